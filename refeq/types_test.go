package refeq

import (
	"sync"
	"time"
)

type Color int

type Status string

type Cents int64

type inner struct {
	Y int
}

type outer struct {
	X     inner
	Label string
}

type node struct {
	Name string
	Next *node
}

type Base struct {
	ID int
}

type derived struct {
	Base

	Name string
}

type guarded struct {
	sync.Mutex

	N int
}

type person struct {
	Name     string
	Age      int
	Tags     []string
	Born     time.Time
	Scratch  string `refeq:"-"`
	password string
}

type employee struct {
	Name string
}

type catalog struct {
	Items  []inner
	ByName map[string]inner
	Extra  any
}

type withFunc struct {
	F  func() int
	Ch chan int
}

func ring(names ...string) *node {
	var head, prev *node

	for _, n := range names {
		cur := &node{Name: n}
		if head == nil {
			head = cur
		} else {
			prev.Next = cur
		}

		prev = cur
	}

	if prev != nil {
		prev.Next = head
	}

	return head
}

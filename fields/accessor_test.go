package fields

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	Audit

	Owner   string
	balance int64
	Tags    any
}

func accountAccessors() []Accessor[account] {
	return []Accessor[account]{
		{Name: "Owner", Get: func(a *account) any { return a.Owner }},
		{Name: "balance", Get: func(a *account) any { return a.balance }},
		{Name: "Tags", Get: func(a *account) any { return a.Tags }},
		{Name: "Audit", Get: func(a *account) any { return a.Audit }},
	}
}

func TestRegisterAccessors(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterAccessors(r, accountAccessors()...))

	d, registered, err := r.Lookup(reflect.TypeFor[account]())
	require.NoError(t, err)
	assert.True(t, registered)
	assert.Equal(t, []string{"Owner", "balance", "Tags"}, names(d.Own()))
	assert.Equal(t, []string{"Audit"}, names(d.Embeds()))

	owner := reflect.ValueOf(account{Owner: "ann", balance: 12})

	balance, _ := d.Field("balance")
	v, err := balance.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, int64(12), v.Int())

	tags, _ := d.Field("Tags")
	v, err = tags.Get(owner)
	require.NoError(t, err)
	assert.Equal(t, reflect.Interface, v.Kind())
	assert.True(t, v.IsNil())
}

func TestRegisterAccessors_Addressable(t *testing.T) {
	r := NewRegistry()

	var seen *account

	MustRegister(r, Accessor[account]{Name: "Owner", Get: func(a *account) any {
		seen = a

		return a.Owner
	}})

	d, _, err := r.Lookup(reflect.TypeFor[account]())
	require.NoError(t, err)

	acc := &account{Owner: "bob"}
	_, err = d.Fields[0].Get(reflect.ValueOf(acc).Elem())
	require.NoError(t, err)
	assert.Same(t, acc, seen)
}

func TestRegisterAccessors_Errors(t *testing.T) {
	tests := []struct {
		name      string
		accessors []Accessor[account]
	}{
		{"unknown field", []Accessor[account]{{Name: "Missing", Get: func(*account) any { return nil }}}},
		{"promoted field", []Accessor[account]{{Name: "CreatedBy", Get: func(*account) any { return nil }}}},
		{"nil accessor", []Accessor[account]{{Name: "Owner"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, RegisterAccessors(NewRegistry(), tt.accessors...), ErrIntrospection)
		})
	}

	require.ErrorIs(t, RegisterAccessors[int](NewRegistry()), ErrIntrospection)
	assert.Panics(t, func() { MustRegister[int](NewRegistry()) })
}

func TestAccessor_Faults(t *testing.T) {
	r := NewRegistry()
	MustRegister(r,
		Accessor[account]{Name: "Owner", Get: func(*account) any { return 42 }},
		Accessor[account]{Name: "balance", Get: func(*account) any { panic("boom") }},
	)

	d, _, err := r.Lookup(reflect.TypeFor[account]())
	require.NoError(t, err)

	owner := reflect.ValueOf(account{})

	_, err = d.Fields[0].Get(owner)
	require.ErrorIs(t, err, ErrIntrospection)
	assert.Contains(t, err.Error(), "returned int, want string")

	_, err = d.Fields[1].Get(owner)
	require.ErrorIs(t, err, ErrIntrospection)
	assert.Contains(t, err.Error(), "panicked: boom")

	_, err = d.Fields[0].Get(reflect.ValueOf(Audit{}))
	require.ErrorIs(t, err, ErrIntrospection)
}

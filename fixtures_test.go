package stringver_test

import (
	"fmt"
	"reflect"
)

// person renders all of its fields in the default Type{a=b, c=d} layout.
type person struct {
	id        int
	firstName string
	lastName  string
}

func (p person) String() string {
	return fmt.Sprintf("person{id=%d, firstName=%s, lastName=%s}", p.id, p.firstName, p.lastName)
}

// staticPerson always renders the same text, so tests can induce exact
// mismatches via prefab values.
type staticPerson struct {
	id        int
	firstName string
	lastName  string
}

func (staticPerson) String() string {
	return "staticPerson{id=1, firstName=A, lastName=A}"
}

// partial omits its secret field from the rendered text.
type partial struct {
	id     int
	secret string
}

func (p partial) String() string {
	return fmt.Sprintf("partial{id=%d}", p.id)
}

// simpleNamed includes only its bare type name.
type simpleNamed struct {
	n int
}

func (s simpleNamed) String() string {
	return fmt.Sprintf("simpleNamed{n=%d}", s.n)
}

// qualifiedNamed includes its package-qualified name.
type qualifiedNamed struct {
	n int
}

func (q qualifiedNamed) String() string {
	return fmt.Sprintf("stringver_test.qualifiedNamed{n=%d}", q.n)
}

// hashStamped renders a fixed hash marker.
type hashStamped struct {
	n int
}

func (h hashStamped) String() string {
	return fmt.Sprintf("hashStamped@123{n=%d}", h.n)
}

// selfHashed renders its own address, matching the default identity hash.
type selfHashed struct {
	n int
}

func (s *selfHashed) String() string {
	return fmt.Sprintf("selfHashed@%d{n=%d}", uint64(reflect.ValueOf(s).Pointer()), s.n)
}

// record renders a sentinel for its nil-able id.
type record struct {
	id   *int
	name string
}

func (r record) String() string {
	if r.id == nil {
		return fmt.Sprintf("record{id=<none>, name=%s}", r.name)
	}
	return fmt.Sprintf("record{id=%d, name=%s}", *r.id, r.name)
}

// priced renders its amount through a dollar prefix.
type priced struct {
	cents int
}

func (p priced) String() string {
	return fmt.Sprintf("priced{cents=$%d}", p.cents)
}

// entity / user exercise embedded (inherited) fields.
type entity struct {
	id int
}

type user struct {
	entity
	name string
}

func (u user) String() string {
	return fmt.Sprintf("user{id=%d, name=%s}", u.id, u.name)
}

// orphan embeds entity but renders only its own field.
type orphan struct {
	entity
	name string
}

func (o orphan) String() string {
	return fmt.Sprintf("orphan{name=%s}", o.name)
}

// colonSep uses a non-default layout.
type colonSep struct {
	a int
}

func (c colonSep) String() string {
	return fmt.Sprintf("colonSep(a: %d)", c.a)
}

// noString has no String method at all.
type noString struct {
	a int
}

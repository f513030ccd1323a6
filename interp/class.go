package interp

import (
	"fmt"

	"github.com/akashmaji946/plox/value"
)

// Class is a Lox class value: a name, an optional superclass, and its
// own methods (not including inherited ones, which are found by
// walking Superclass).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a Class with its own method set.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (*Class) Type() value.Type { return value.ClassType }
func (c *Class) String() string { return c.Name }

// Arity is the initializer's arity, or 0 if the class declares none —
// a bare `Point()` call is valid when there is no explicit init.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) findMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// instantiate creates a new Instance of class and runs its
// initializer (if any) against args.
func (i *Interpreter) instantiate(class *Class, args []value.Value) (value.Value, error) {
	instance := NewInstance(class)
	if init, ok := class.findMethod("init"); ok {
		if _, err := i.callFunction(init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a live object: a reference to its class plus its own
// field values.
type Instance struct {
	class  *Class
	fields map[string]value.Value
}

// NewInstance creates an empty instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]value.Value)}
}

func (*Instance) Type() value.Type { return value.InstanceType }
func (inst *Instance) String() string {
	return fmt.Sprintf("%s instance", inst.class.Name)
}

// Get reads a field first, falling back to a bound method.
func (inst *Instance) Get(name string) (value.Value, bool) {
	if v, ok := inst.fields[name]; ok {
		return v, true
	}
	if m, ok := inst.class.findMethod(name); ok {
		return m.Bind(inst), true
	}
	return nil, false
}

// Set assigns a field on inst, creating it if it does not already
// exist — Lox instances are open, unlike their classes.
func (inst *Instance) Set(name string, v value.Value) {
	inst.fields[name] = v
}

package tlog

import "github.com/sirkon/errors"

// contextCollector gathers structured error context for rendering.
type contextCollector struct {
	vars []contextVar
}

type contextVar struct {
	name  string
	value any
}

var _ errors.ErrorContextConsumer = &contextCollector{}

func (c *contextCollector) put(name string, value any) {
	c.vars = append(c.vars, contextVar{name: name, value: value})
}

func (c *contextCollector) Bool(name string, value bool)       { c.put(name, value) }
func (c *contextCollector) Int(name string, value int)         { c.put(name, value) }
func (c *contextCollector) Int8(name string, value int8)       { c.put(name, value) }
func (c *contextCollector) Int16(name string, value int16)     { c.put(name, value) }
func (c *contextCollector) Int32(name string, value int32)     { c.put(name, value) }
func (c *contextCollector) Int64(name string, value int64)     { c.put(name, value) }
func (c *contextCollector) Uint(name string, value uint)       { c.put(name, value) }
func (c *contextCollector) Uint8(name string, value uint8)     { c.put(name, value) }
func (c *contextCollector) Uint16(name string, value uint16)   { c.put(name, value) }
func (c *contextCollector) Uint32(name string, value uint32)   { c.put(name, value) }
func (c *contextCollector) Uint64(name string, value uint64)   { c.put(name, value) }
func (c *contextCollector) Float32(name string, value float32) { c.put(name, value) }
func (c *contextCollector) Float64(name string, value float64) { c.put(name, value) }
func (c *contextCollector) String(name string, value string)   { c.put(name, value) }
func (c *contextCollector) Any(name string, value interface{}) { c.put(name, value) }

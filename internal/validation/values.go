package validation

import "github.com/gofiber/fiber/v2"

const valuesKey = "validation.values"

// Values holds the coerced fields of a validated body. Absent fields are
// not stored.
type Values map[string]interface{}

// String returns a string field and whether it was supplied.
func (v Values) String(name string) (string, bool) {
	s, ok := v[name].(string)
	return s, ok
}

// Float returns a Number field and whether it was supplied.
func (v Values) Float(name string) (float64, bool) {
	f, ok := v[name].(float64)
	return f, ok
}

// Int returns an Integer field and whether it was supplied.
func (v Values) Int(name string) (int, bool) {
	i, ok := v[name].(int)
	return i, ok
}

// StringPtr returns a string field, or nil when it was not supplied.
func (v Values) StringPtr(name string) *string {
	if s, ok := v.String(name); ok {
		return &s
	}
	return nil
}

// FloatPtr returns a Number field, or nil when it was not supplied.
func (v Values) FloatPtr(name string) *float64 {
	if f, ok := v.Float(name); ok {
		return &f
	}
	return nil
}

// IntPtr returns an Integer field, or nil when it was not supplied.
func (v Values) IntPtr(name string) *int {
	if i, ok := v.Int(name); ok {
		return &i
	}
	return nil
}

// Body validates the request body against schema and stores the resulting
// Values on the context. Rejected bodies never reach the next handler.
func Body(schema *Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		values, err := schema.Validate(c.Body())
		if err != nil {
			return err
		}
		c.Locals(valuesKey, values)
		return c.Next()
	}
}

// FromCtx returns the Values stored by Body, or an empty set.
func FromCtx(c *fiber.Ctx) Values {
	if values, ok := c.Locals(valuesKey).(Values); ok {
		return values
	}
	return Values{}
}

package models

import "time"

func (p *Product) Touch(now time.Time) { touch(&p.CreatedAt, &p.UpdatedAt, now) }
func (u *User) Touch(now time.Time)    { touch(&u.CreatedAt, &u.UpdatedAt, now) }
func (r *Review) Touch(now time.Time)  { touch(&r.CreatedAt, &r.UpdatedAt, now) }

// touch sets the creation time once and the update time on every call.
func touch(createdAt, updatedAt *time.Time, now time.Time) {
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}

package domain

import "time"

type Group struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Permission struct {
	ID       string
	Name     string
	Codename string
}

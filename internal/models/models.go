package models

// All lists every model in foreign-key dependency order.
func All() []interface{} {
	return []interface{}{
		&Company{},
		&Team{},
		&User{},
		&UserTeam{},
		&Task{},
		&Comment{},
	}
}

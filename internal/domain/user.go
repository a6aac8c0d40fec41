package domain

import "time"

// User описывает учётную запись клиента. Пользователь неизменяем после
// создания; операции удаления в системе нет.
type User struct {
	ID   string
	Name string
	// Email глобально уникален; сравнение регистрозависимое, как прислал клиент.
	Email     string
	CreatedAt time.Time
}

// Validate проверяет обязательные поля пользователя.
func (u *User) Validate() []error {
	var errs []error

	if u.Name == "" {
		errs = append(errs, ErrNameRequired)
	}
	if u.Email == "" {
		errs = append(errs, ErrEmailRequired)
	}

	return errs
}

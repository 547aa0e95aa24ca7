package validation

import (
	"fmt"
	"regexp"
)

// FieldKeyPattern определяет допустимый формат ключа поля (значение атрибута data-field).
// Ключ задается при верстке и должен быть стабильным: латинские буквы, цифры, "_", "-", ".".
// Первый символ - буква или цифра. Длина: 1-64 символа.
var FieldKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]{0,63}$`)

// PageIDPattern определяет допустимый формат идентификатора страницы.
// Идентификатор используется в ключах кэша, имени документа и имени файла.
var PageIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,63}$`)

const (
	// MaxKeyLen максимальная длина ключа поля и идентификатора страницы
	MaxKeyLen = 64
)

// ValidateFieldKey проверяет ключ поля
func ValidateFieldKey(key string) error {
	if key == "" {
		return fmt.Errorf("field key cannot be empty")
	}

	if len(key) > MaxKeyLen {
		return fmt.Errorf("field key must not exceed %d characters", MaxKeyLen)
	}

	if !FieldKeyPattern.MatchString(key) {
		return fmt.Errorf("field key %q can only contain letters, numbers, '_', '-' and '.'", key)
	}

	return nil
}

// ValidatePageID проверяет идентификатор страницы
func ValidatePageID(page string) error {
	if page == "" {
		return fmt.Errorf("page id cannot be empty")
	}

	if len(page) > MaxKeyLen {
		return fmt.Errorf("page id must not exceed %d characters", MaxKeyLen)
	}

	if !PageIDPattern.MatchString(page) {
		return fmt.Errorf("page id %q can only contain letters, numbers, '_' and '-'", page)
	}

	return nil
}

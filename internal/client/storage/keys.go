package storage

import "fmt"

// DefaultNamespace префикс ключей локального кэша по умолчанию
const DefaultNamespace = "sms"

// Ключи локального кэша повторяют схему localStorage сайта:
// {namespace}-{pageId}-content, {namespace}-{pageId}-lastSave, {namespace}-admin-auth ...

// ContentKey returns the key of the full page snapshot.
func ContentKey(namespace, page string) string {
	return fmt.Sprintf("%s-%s-content", namespace, page)
}

// LastSaveKey returns the key of the page high-water mark.
func LastSaveKey(namespace, page string) string {
	return fmt.Sprintf("%s-%s-lastSave", namespace, page)
}

// AdminAuthKey ключ флага аутентификации администратора
func AdminAuthKey(namespace string) string {
	return namespace + "-admin-auth"
}

// AdminEmailKey ключ identity администратора
func AdminEmailKey(namespace string) string {
	return namespace + "-admin-email"
}

// SessionExpiresKey ключ срока действия сессии (unix seconds)
func SessionExpiresKey(namespace string) string {
	return namespace + "-session-expires"
}

// GitHubTokenKey ключ токена публикации
func GitHubTokenKey(namespace string) string {
	return namespace + "-github-token"
}

// GitHubTokenSaltKey ключ соли, с которой запечатан токен публикации
func GitHubTokenSaltKey(namespace string) string {
	return namespace + "-github-token-salt"
}

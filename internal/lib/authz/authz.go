// Package authz реализует проверку владения ресурсом.
//
// Идентификаторы приходят из разных слоёв (JWT claims, URL, база данных)
// и могут отличаться формой записи одного и того же UUID, поэтому перед
// сравнением оба идентификатора нормализуются через uuid.Parse.
package authz

import (
	"github.com/google/uuid"

	"github.com/magabrotheeeer/project-tracker/internal/models"
)

// Allow возвращает true, только если identity задана и её идентификатор
// совпадает с идентификатором владельца ресурса.
//
// Непарсящиеся идентификаторы сравниваются как есть: отказ по умолчанию
// безопаснее, чем совпадение из-за нормализации мусора.
func Allow(identity *models.User, ownerUID string) bool {
	if identity == nil || identity.UID == "" || ownerUID == "" {
		return false
	}

	a, errA := uuid.Parse(identity.UID)
	b, errB := uuid.Parse(ownerUID)
	if errA != nil || errB != nil {
		return identity.UID == ownerUID
	}
	return a == b
}

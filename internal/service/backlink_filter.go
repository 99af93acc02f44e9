package service

import (
	"Backtrack-Backend/internal/domain"
	"sort"
	"strings"
)

// BacklinkFilter — критерии отбора размещений для детального вида сайта.
// Все поля опциональны и комбинируются через AND. В отличие от списка
// ресурсов фильтр применяется в памяти процесса и не пагинируется.
type BacklinkFilter struct {
	Statuses           []string
	MinDomainAuthority int
	MaxCost            *float64
	Search             string
}

// IsEmpty сообщает, что ни один критерий не задан.
func (f *BacklinkFilter) IsEmpty() bool {
	return len(f.Statuses) == 0 && f.MinDomainAuthority == 0 && f.MaxCost == nil && f.Search == ""
}

// Matches проверяет одно размещение по всем критериям.
// Критерии по ресурсу пропускают записи без загруженного ресурса.
func (f *BacklinkFilter) Matches(b *domain.Backlink) bool {
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if b.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if b.Resource == nil {
		return f.MinDomainAuthority == 0 && f.MaxCost == nil && f.Search == ""
	}

	if f.MinDomainAuthority > 0 && b.Resource.DomainAuthority < f.MinDomainAuthority {
		return false
	}
	if f.MaxCost != nil && b.Resource.Cost > *f.MaxCost {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(b.Resource.Domain), strings.ToLower(f.Search)) {
		return false
	}

	return true
}

// Apply возвращает размещения, прошедшие фильтр, сохраняя порядок входа.
func (f *BacklinkFilter) Apply(backlinks []*domain.Backlink) []*domain.Backlink {
	if f.IsEmpty() {
		return backlinks
	}

	filtered := make([]*domain.Backlink, 0, len(backlinks))
	for _, b := range backlinks {
		if f.Matches(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Приоритет статусов: живые ссылки сверху, неизвестные статусы внизу.
var statusRank = map[string]int{
	domain.StatusLive:     1,
	domain.StatusPlaced:   2,
	domain.StatusPending:  3,
	domain.StatusRejected: 5,
	domain.StatusRemoved:  6,
}

const unknownStatusRank = 7

func rankStatus(status string) int {
	if r, ok := statusRank[status]; ok {
		return r
	}
	return unknownStatusRank
}

// SortBacklinks упорядочивает размещения детерминированно: приоритет
// статуса, затем domain_authority по убыванию, затем домен по алфавиту.
// Сортировка стабильна: равные записи сохраняют взаимный порядок.
func SortBacklinks(backlinks []*domain.Backlink) {
	sort.SliceStable(backlinks, func(i, j int) bool {
		ri, rj := rankStatus(backlinks[i].Status), rankStatus(backlinks[j].Status)
		if ri != rj {
			return ri < rj
		}

		var dai, daj int
		var di, dj string
		if backlinks[i].Resource != nil {
			dai, di = backlinks[i].Resource.DomainAuthority, backlinks[i].Resource.Domain
		}
		if backlinks[j].Resource != nil {
			daj, dj = backlinks[j].Resource.DomainAuthority, backlinks[j].Resource.Domain
		}
		if dai != daj {
			return dai > daj
		}
		return di < dj
	})
}

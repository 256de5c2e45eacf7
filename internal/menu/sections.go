package menu

import (
	"little-lemon/internal/model"
)

// Sections groups a flat query result into category sections for display.
// Sections appear in first-seen order of their category, and items keep
// their relative order within a section. The category field is carried by
// the section, not the items. Pure transform, no I/O.
func Sections(items []model.MenuItem) []model.MenuSection {
	sections := make([]model.MenuSection, 0)
	index := make(map[string]int)

	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(sections)
			index[item.Category] = i
			sections = append(sections, model.MenuSection{
				Name: item.Category,
				Data: []model.SectionItem{},
			})
		}
		sections[i].Data = append(sections[i].Data, model.SectionItem{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Description: item.Description,
			Image:       item.Image,
		})
	}

	return sections
}

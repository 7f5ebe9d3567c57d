package index

import "github.com/ionut85/ai-marketing-tools-directory/pkg/types"

// TotalPages is never below 1, so page 1 of an empty list is valid.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	return max(1, (total+pageSize-1)/pageSize)
}

// Paginate slices out the 1-based page. Pages outside [1, totalPages] yield
// an empty slice; keeping the page in range is up to the caller.
func Paginate(items []types.Item, pageSize, page int) ([]types.Item, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	totalPages := TotalPages(len(items), pageSize)
	if page < 1 || page > totalPages {
		return []types.Item{}, totalPages
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(items))
	return items[start:end], totalPages
}

type Page struct {
	Items      []types.Item `json:"items"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
	TotalHits  int          `json:"totalHits"`
	HasPrev    bool         `json:"hasPrev"`
	HasNext    bool         `json:"hasNext"`
}

func NewPage(items []types.Item, pageSize, page int) Page {
	pageItems, totalPages := Paginate(items, pageSize, page)
	return Page{
		Items:      pageItems,
		Page:       page,
		PageSize:   max(pageSize, 1),
		TotalPages: totalPages,
		TotalHits:  len(items),
		HasPrev:    page > 1 && page <= totalPages,
		HasNext:    page >= 1 && page < totalPages,
	}
}

// ClampPage keeps page inside [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

package impl

import (
	"pharmaduty/config"
	"pharmaduty/internal/domain/discovery"
	"pharmaduty/internal/util"
)

// normalizePage clamps page to [1, discovery.MaxPage] and pageSize to [1, maxSize], using
// defaultSize when pageSize is not positive. maxSize <= 0 disables the cap.
func normalizePage(page, pageSize, defaultSize, maxSize int) (int, int) {
	if page <= 0 {
		page = discovery.DefaultPage
	}
	page = min(page, discovery.MaxPage)
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	if pageSize <= 0 {
		pageSize = discovery.DefaultPageSize
	}
	if maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}

	return page, pageSize
}

func newPagination(page, pageSize int, total int64) discovery.Pagination {
	return discovery.Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      int(total),
		TotalPages: util.CeilDiv(int(total), pageSize),
	}
}

// pageSizes reads the default and maximum page sizes from the discovery section.
func pageSizes(cfg *config.Config) (int, int) {
	if cfg == nil || cfg.Discovery == nil {
		return config.DefaultPageSize, config.DefaultMaxPageSize
	}

	return cfg.Discovery.DefaultPageSize, cfg.Discovery.MaxPageSize
}

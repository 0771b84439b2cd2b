package pkg

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rdityas/weblog-core/internal/app/models"
	"gorm.io/gorm"
)

// Scope is a reusable query fragment in GORM's scope style.
type Scope func(*gorm.DB) *gorm.DB

// PageQuery describes what a paginated listing selects. Filter is the where
// predicate and drives both the count and the fetch, so the two can never use
// different predicates. View carries ordering and preloads and applies to the
// fetch only, keeping the count query cheap.
type PageQuery struct {
	Filter Scope
	View   Scope
}

// Paginate runs the count and the page fetch for one listing and assembles
// the navigation envelope. The two reads are independent; under concurrent
// writes TotalCount may be momentarily stale relative to Data. Store errors
// propagate unchanged.
func Paginate[T any](db *gorm.DB, req models.PageRequest, query PageQuery) (*models.PageResult[T], error) {
	req = req.Normalize()
	offset := (req.PageNumber - 1) * req.PageSize

	var model T

	countQuery := db.Model(&model)
	if query.Filter != nil {
		countQuery = query.Filter(countQuery)
	}

	var totalCount int64
	if err := countQuery.Count(&totalCount).Error; err != nil {
		return nil, err
	}

	fetchQuery := db.Model(&model)
	if query.Filter != nil {
		fetchQuery = query.Filter(fetchQuery)
	}
	if query.View != nil {
		fetchQuery = query.View(fetchQuery)
	}

	data := make([]T, 0, req.PageSize)
	if err := fetchQuery.Offset(offset).Limit(req.PageSize).Find(&data).Error; err != nil {
		return nil, err
	}

	totalPages := int((totalCount + int64(req.PageSize) - 1) / int64(req.PageSize))
	hasNextPage := req.PageNumber < totalPages
	hasPreviousPage := req.PageNumber > 1

	var prevPage, nextPage *string
	if hasPreviousPage {
		locator := pageLocator(req.PageNumber-1, req.PageSize)
		prevPage = &locator
	}
	if hasNextPage {
		locator := pageLocator(req.PageNumber+1, req.PageSize)
		nextPage = &locator
	}

	return &models.PageResult[T]{
		Data:            data,
		TotalCount:      totalCount,
		CurrentPage:     req.PageNumber,
		TotalPages:      totalPages,
		HasNextPage:     hasNextPage,
		HasPreviousPage: hasPreviousPage,
		PrevPage:        prevPage,
		NextPage:        nextPage,
	}, nil
}

func pageLocator(pageNumber, pageSize int) string {
	return fmt.Sprintf("?pageNumber=%d&pageSize=%d", pageNumber, pageSize)
}

// PageRequestFromQuery reads pageNumber and pageSize from the query string.
// They are advisory display parameters: missing or unparseable values fall
// back to the defaults instead of raising a validation error.
func PageRequestFromQuery(c *fiber.Ctx) models.PageRequest {
	pageNumber, err := strconv.Atoi(c.Query("pageNumber"))
	if err != nil {
		pageNumber = models.DefaultPageNumber
	}

	pageSize, err := strconv.Atoi(c.Query("pageSize"))
	if err != nil {
		pageSize = models.DefaultPageSize
	}

	return models.PageRequest{PageNumber: pageNumber, PageSize: pageSize}.Normalize()
}

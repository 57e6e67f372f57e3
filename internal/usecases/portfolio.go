package usecases

import (
	"context"
	"time"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/lightbox"
	"github.com/just-nibble/folio-service/internal/repository"
	"github.com/just-nibble/folio-service/pkg/log"
	"github.com/just-nibble/folio-service/pkg/validator"
)

type PortfolioUsecase interface {
	List(ctx context.Context, category domain.PortfolioCategory) ([]domain.PortfolioItem, error)
	Gallery(ctx context.Context, category domain.PortfolioCategory, index int) (*dtos.GalleryItem, error)
	Create(ctx context.Context, input dtos.PortfolioInput) (*dtos.PortfolioMutation, error)
	Update(ctx context.Context, id string, input dtos.PortfolioInput) (*dtos.PortfolioMutation, error)
	Delete(ctx context.Context, id string) (*dtos.PortfolioMutation, error)
}

type portfolioUsecase struct {
	store repository.PortfolioStore
	log   log.Log
	now   func() time.Time
}

func NewPortfolioUsecase(store repository.PortfolioStore, logger log.Log) PortfolioUsecase {
	return &portfolioUsecase{store: store, log: logger.Component("portfolio"), now: time.Now}
}

func (uc *portfolioUsecase) List(ctx context.Context, category domain.PortfolioCategory) ([]domain.PortfolioItem, error) {
	if category != "" && !category.Valid() {
		return nil, &validator.ValidationError{Fields: map[string]string{
			"category": "category must be one of: design-graphics, motion-graphics, 3d-graphics",
		}}
	}
	return uc.store.ListPortfolios(ctx, category)
}

// Gallery returns the item at index within one category, as shown in the
// lightbox, with the indices reached by prev and next.
func (uc *portfolioUsecase) Gallery(ctx context.Context, category domain.PortfolioCategory, index int) (*dtos.GalleryItem, error) {
	items, err := uc.List(ctx, category)
	if err != nil {
		return nil, err
	}

	lb := lightbox.New(len(items), nil)
	if err := lb.Open(index); err != nil {
		return nil, err
	}
	prev, next := lightbox.Neighbours(lb.Index(), lb.Len())

	return &dtos.GalleryItem{
		Item:  items[lb.Index()],
		Index: lb.Index(),
		Total: lb.Len(),
		Prev:  prev,
		Next:  next,
	}, nil
}

func (uc *portfolioUsecase) fromInput(input dtos.PortfolioInput) domain.PortfolioItem {
	return domain.PortfolioItem{
		Title:       input.Title,
		Category:    domain.PortfolioCategory(input.Category),
		Description: input.Description,
		Tags:        validator.SplitList(input.Tags),
		ImageURL:    input.ImageURL,
	}
}

func (uc *portfolioUsecase) Create(ctx context.Context, input dtos.PortfolioInput) (*dtos.PortfolioMutation, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	item := uc.fromInput(input)
	item.CreatedAt = uc.now()
	item.UpdatedAt = item.CreatedAt

	saved, err := uc.store.SavePortfolio(ctx, item)
	if err != nil {
		return uc.failed(ctx, err, "create"), err
	}
	return &dtos.PortfolioMutation{
		Notice: success("Portfolio item %q created", saved.Title),
		Item:   saved,
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *portfolioUsecase) Update(ctx context.Context, id string, input dtos.PortfolioInput) (*dtos.PortfolioMutation, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}
	if err := checkID(id); err != nil {
		return uc.failed(ctx, err, "update"), err
	}

	item := uc.fromInput(input)
	item.ID = id
	item.UpdatedAt = uc.now()

	updated, err := uc.store.UpdatePortfolio(ctx, item)
	if err != nil {
		return uc.failed(ctx, err, "update"), err
	}
	return &dtos.PortfolioMutation{
		Notice: success("Portfolio item %q updated", updated.Title),
		Item:   updated,
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *portfolioUsecase) Delete(ctx context.Context, id string) (*dtos.PortfolioMutation, error) {
	err := checkID(id)
	if err == nil {
		err = uc.store.DeletePortfolio(ctx, id)
	}
	if err != nil {
		return uc.failed(ctx, err, "delete"), err
	}
	return &dtos.PortfolioMutation{
		Notice: success("Portfolio item deleted"),
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *portfolioUsecase) relist(ctx context.Context) []domain.PortfolioItem {
	return relist(ctx, uc.log, "portfolio item", func(ctx context.Context) ([]domain.PortfolioItem, error) {
		return uc.store.ListPortfolios(ctx, "")
	})
}

func (uc *portfolioUsecase) failed(ctx context.Context, err error, action string) *dtos.PortfolioMutation {
	return &dtos.PortfolioMutation{
		Notice: failure(uc.log, err, action, "portfolio item"),
		Items:  uc.relist(ctx),
	}
}

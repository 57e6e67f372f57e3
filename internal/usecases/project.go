package usecases

import (
	"context"
	"time"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/repository"
	"github.com/just-nibble/folio-service/pkg/log"
	"github.com/just-nibble/folio-service/pkg/validator"
)

type ProjectUsecase interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, input dtos.ProjectInput) (*dtos.ProjectMutation, error)
	Update(ctx context.Context, id string, input dtos.ProjectInput) (*dtos.ProjectMutation, error)
	Delete(ctx context.Context, id string) (*dtos.ProjectMutation, error)
}

type projectUsecase struct {
	store repository.ProjectStore
	log   log.Log
	now   func() time.Time
}

func NewProjectUsecase(store repository.ProjectStore, logger log.Log) ProjectUsecase {
	return &projectUsecase{store: store, log: logger.Component("project"), now: time.Now}
}

func (uc *projectUsecase) List(ctx context.Context) ([]domain.Project, error) {
	return uc.store.ListProjects(ctx)
}

// ProjectFromInput converts the form, splitting the comma separated lists.
func ProjectFromInput(input dtos.ProjectInput) domain.Project {
	return domain.Project{
		Name:          input.Name,
		Description:   input.Description,
		Technologies:  validator.SplitList(input.Technologies),
		Features:      validator.SplitList(input.Features),
		LiveURL:       input.LiveURL,
		Category:      input.Category,
		ScreenshotURL: input.ScreenshotURL,
	}
}

func (uc *projectUsecase) Create(ctx context.Context, input dtos.ProjectInput) (*dtos.ProjectMutation, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	project := ProjectFromInput(input)
	project.CreatedAt = uc.now()
	project.UpdatedAt = project.CreatedAt

	saved, err := uc.store.SaveProject(ctx, project)
	if err != nil {
		return uc.failed(ctx, err, "create"), err
	}
	return &dtos.ProjectMutation{
		Notice: success("Project %q created", saved.Name),
		Item:   saved,
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *projectUsecase) Update(ctx context.Context, id string, input dtos.ProjectInput) (*dtos.ProjectMutation, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}
	if err := checkID(id); err != nil {
		return uc.failed(ctx, err, "update"), err
	}

	project := ProjectFromInput(input)
	project.ID = id
	project.UpdatedAt = uc.now()

	updated, err := uc.store.UpdateProject(ctx, project)
	if err != nil {
		return uc.failed(ctx, err, "update"), err
	}
	return &dtos.ProjectMutation{
		Notice: success("Project %q updated", updated.Name),
		Item:   updated,
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *projectUsecase) Delete(ctx context.Context, id string) (*dtos.ProjectMutation, error) {
	err := checkID(id)
	if err == nil {
		err = uc.store.DeleteProject(ctx, id)
	}
	if err != nil {
		return uc.failed(ctx, err, "delete"), err
	}
	return &dtos.ProjectMutation{
		Notice: success("Project deleted"),
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *projectUsecase) relist(ctx context.Context) []domain.Project {
	return relist(ctx, uc.log, "project", uc.store.ListProjects)
}

func (uc *projectUsecase) failed(ctx context.Context, err error, action string) *dtos.ProjectMutation {
	return &dtos.ProjectMutation{
		Notice: failure(uc.log, err, action, "project"),
		Items:  uc.relist(ctx),
	}
}

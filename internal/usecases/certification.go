package usecases

import (
	"context"
	"strconv"
	"time"

	"github.com/just-nibble/folio-service/internal/domain"
	"github.com/just-nibble/folio-service/internal/http/dtos"
	"github.com/just-nibble/folio-service/internal/repository"
	"github.com/just-nibble/folio-service/pkg/log"
	"github.com/just-nibble/folio-service/pkg/validator"
)

type CertificationUsecase interface {
	List(ctx context.Context) ([]domain.Certification, error)
	Create(ctx context.Context, input dtos.CertificationInput) (*dtos.CertificationMutation, error)
	Update(ctx context.Context, id string, input dtos.CertificationInput) (*dtos.CertificationMutation, error)
	Delete(ctx context.Context, id string) (*dtos.CertificationMutation, error)
}

type certificationUsecase struct {
	store repository.CertificationStore
	log   log.Log
	now   func() time.Time
}

func NewCertificationUsecase(store repository.CertificationStore, logger log.Log) CertificationUsecase {
	return &certificationUsecase{store: store, log: logger.Component("certification"), now: time.Now}
}

func (uc *certificationUsecase) List(ctx context.Context) ([]domain.Certification, error) {
	return uc.store.ListCertifications(ctx)
}

func (uc *certificationUsecase) fromInput(input dtos.CertificationInput) domain.Certification {
	year := input.Year
	if year == "" {
		year = strconv.Itoa(uc.now().Year())
	}
	return domain.Certification{
		Name:        input.Name,
		Type:        domain.CertificationType(input.Type),
		Issuer:      input.Issuer,
		Year:        year,
		Description: input.Description,
		FileURL:     input.FileURL,
	}
}

func (uc *certificationUsecase) Create(ctx context.Context, input dtos.CertificationInput) (*dtos.CertificationMutation, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}

	cert := uc.fromInput(input)
	cert.CreatedAt = uc.now()
	cert.UpdatedAt = cert.CreatedAt

	saved, err := uc.store.SaveCertification(ctx, cert)
	if err != nil {
		return uc.failed(ctx, err, "create"), err
	}
	return &dtos.CertificationMutation{
		Notice: success("Certification %q created", saved.Name),
		Item:   saved,
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *certificationUsecase) Update(ctx context.Context, id string, input dtos.CertificationInput) (*dtos.CertificationMutation, error) {
	if err := validator.Struct(input); err != nil {
		return nil, err
	}
	if err := checkID(id); err != nil {
		return uc.failed(ctx, err, "update"), err
	}

	cert := uc.fromInput(input)
	cert.ID = id
	cert.UpdatedAt = uc.now()

	updated, err := uc.store.UpdateCertification(ctx, cert)
	if err != nil {
		return uc.failed(ctx, err, "update"), err
	}
	return &dtos.CertificationMutation{
		Notice: success("Certification %q updated", updated.Name),
		Item:   updated,
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *certificationUsecase) Delete(ctx context.Context, id string) (*dtos.CertificationMutation, error) {
	err := checkID(id)
	if err == nil {
		err = uc.store.DeleteCertification(ctx, id)
	}
	if err != nil {
		return uc.failed(ctx, err, "delete"), err
	}
	return &dtos.CertificationMutation{
		Notice: success("Certification deleted"),
		Items:  uc.relist(ctx),
	}, nil
}

func (uc *certificationUsecase) relist(ctx context.Context) []domain.Certification {
	return relist(ctx, uc.log, "certification", uc.store.ListCertifications)
}

func (uc *certificationUsecase) failed(ctx context.Context, err error, action string) *dtos.CertificationMutation {
	return &dtos.CertificationMutation{
		Notice: failure(uc.log, err, action, "certification"),
		Items:  uc.relist(ctx),
	}
}

package service

import (
	"context"
	"errors"

	"rootguard/internal/apperr"
	"rootguard/internal/domain"
	"rootguard/internal/repository"
)

// PersonService describes person profile lifecycle operations. Every
// update writes a single field and returns the row as the store holds
// it afterwards.
type PersonService interface {
	Create(ctx context.Context, data repository.CreatePerson) (*domain.Person, error)
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	UpdateFirstname(ctx context.Context, id int64, firstname string) (*domain.Person, error)
	UpdateMiddlename(ctx context.Context, id int64, middlename string) (*domain.Person, error)
	UpdateLastname(ctx context.Context, id int64, lastname string) (*domain.Person, error)
	UpdateSex(ctx context.Context, id int64, sex domain.Sex) (*domain.Person, error)
	UpdateProfileImageURL(ctx context.Context, id int64, url string) (*domain.Person, error)
	Delete(ctx context.Context, id int64) error
}

type personService struct {
	persons repository.PersonRepository
}

func NewPersonService(persons repository.PersonRepository) PersonService {
	return &personService{persons: persons}
}

func (s *personService) Create(ctx context.Context, data repository.CreatePerson) (*domain.Person, error) {
	// no validation beyond type shape; store constraints surface as-is
	return s.persons.Create(ctx, data)
}

func (s *personService) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	person, err := s.persons.GetByID(ctx, id)
	if err != nil {
		return nil, translatePersonErr(id, err)
	}
	return person, nil
}

func (s *personService) UpdateFirstname(ctx context.Context, id int64, firstname string) (*domain.Person, error) {
	person, err := s.persons.UpdateFirstname(ctx, id, firstname)
	if err != nil {
		return nil, translatePersonErr(id, err)
	}
	return person, nil
}

func (s *personService) UpdateMiddlename(ctx context.Context, id int64, middlename string) (*domain.Person, error) {
	person, err := s.persons.UpdateMiddlename(ctx, id, middlename)
	if err != nil {
		return nil, translatePersonErr(id, err)
	}
	return person, nil
}

func (s *personService) UpdateLastname(ctx context.Context, id int64, lastname string) (*domain.Person, error) {
	person, err := s.persons.UpdateLastname(ctx, id, lastname)
	if err != nil {
		return nil, translatePersonErr(id, err)
	}
	return person, nil
}

func (s *personService) UpdateSex(ctx context.Context, id int64, sex domain.Sex) (*domain.Person, error) {
	person, err := s.persons.UpdateSex(ctx, id, sex)
	if err != nil {
		return nil, translatePersonErr(id, err)
	}
	return person, nil
}

func (s *personService) UpdateProfileImageURL(ctx context.Context, id int64, url string) (*domain.Person, error) {
	person, err := s.persons.UpdateProfileImageURL(ctx, id, url)
	if err != nil {
		return nil, translatePersonErr(id, err)
	}
	return person, nil
}

func (s *personService) Delete(ctx context.Context, id int64) error {
	if err := s.persons.Delete(ctx, id); err != nil {
		return translatePersonErr(id, err)
	}
	return nil
}

func translatePersonErr(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.PersonNotFound(id)
	}
	return err
}

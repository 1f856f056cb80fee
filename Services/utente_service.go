package Services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"Concessionario/Dtos"
	"Concessionario/Mappers"
	"Concessionario/Models"
)

// UtenteService implements the customer business rules: required-field
// validation, codice fiscale uniqueness, single-filter search and partial
// updates.
type UtenteService struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewUtenteService(db *gorm.DB) *UtenteService {
	return &UtenteService{DB: db, validate: validator.New()}
}

func (s *UtenteService) GetUtenti() ([]*Dtos.UtenteResponseDto, error) {
	var utenti []Models.Utente
	if err := s.DB.Find(&utenti).Error; err != nil {
		return nil, err
	}

	dtos := make([]*Dtos.UtenteResponseDto, 0, len(utenti))
	for i := range utenti {
		dtos = append(dtos, Mappers.ToUtenteResponse(&utenti[i]))
	}
	return dtos, nil
}

// GetUtenteByCodiceFiscale returns (nil, nil) when no customer matches.
func (s *UtenteService) GetUtenteByCodiceFiscale(codiceFiscale string) (*Dtos.UtenteResponseDto, error) {
	var utente Models.Utente
	err := s.DB.Where("codice_fiscale_utente = ?", codiceFiscale).First(&utente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithField("codiceFiscale", codiceFiscale).Warn("Utente non trovato")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Mappers.ToUtenteResponse(&utente), nil
}

// SearchUtenti applies a single filter with precedence nome > cognome >
// email; remaining filters are ignored once one matches. This mirrors the
// documented contract and is deliberately not a conjunctive AND.
func (s *UtenteService) SearchUtenti(nome, cognome, email string) ([]*Dtos.UtenteResponseDto, error) {
	query := s.DB.Model(&Models.Utente{})

	switch {
	case nome != "":
		query = query.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(nome)+"%")
	case cognome != "":
		query = query.Where("LOWER(cognome) LIKE ?", "%"+strings.ToLower(cognome)+"%")
	case email != "":
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(email)+"%")
	}

	var utenti []Models.Utente
	if err := query.Find(&utenti).Error; err != nil {
		return nil, err
	}

	dtos := make([]*Dtos.UtenteResponseDto, 0, len(utenti))
	for i := range utenti {
		dtos = append(dtos, Mappers.ToUtenteResponse(&utenti[i]))
	}
	log.WithField("results", len(dtos)).Info("Ricerca utenti completata")
	return dtos, nil
}

func (s *UtenteService) Insert(req *Dtos.UtenteRequestDto) (*Dtos.UtenteResponseDto, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: dati utente mancanti", ErrValidation)
	}

	// Trim before validating so whitespace-only fields are rejected too.
	req.CodiceFiscaleUtente = strings.TrimSpace(req.CodiceFiscaleUtente)
	req.Nome = strings.TrimSpace(req.Nome)
	req.Cognome = strings.TrimSpace(req.Cognome)
	req.DataNascita = strings.TrimSpace(req.DataNascita)
	req.Email = strings.TrimSpace(req.Email)
	req.Indirizzo = strings.TrimSpace(req.Indirizzo)

	if err := s.validate.Struct(req); err != nil {
		var fields []string
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
		}
		return nil, fmt.Errorf("%w: campi obbligatori mancanti: %s", ErrValidation, strings.Join(fields, ", "))
	}

	var existing Models.Utente
	err := s.DB.Where("codice_fiscale_utente = ?", req.CodiceFiscaleUtente).First(&existing).Error
	if err == nil {
		log.WithField("codiceFiscale", req.CodiceFiscaleUtente).Error("Codice fiscale già in uso")
		return nil, fmt.Errorf("%w: codice fiscale già in uso", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	utente := Mappers.ToUtenteEntity(req)
	if err := s.DB.Create(utente).Error; err != nil {
		return nil, err
	}

	log.WithField("codiceFiscale", utente.CodiceFiscaleUtente).Info("Utente inserito")
	return Mappers.ToUtenteResponse(utente), nil
}

// Update patches the customer identified by codice fiscale. Returns
// (nil, nil) when the customer does not exist; only non-nil patch fields
// change (PatchPartial).
func (s *UtenteService) Update(patch *Dtos.UtenteUpdateDto, codiceFiscale string) (*Dtos.UtenteResponseDto, error) {
	var utente Models.Utente
	err := s.DB.Where("codice_fiscale_utente = ?", codiceFiscale).First(&utente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithField("codiceFiscale", codiceFiscale).Warn("Utente non trovato per l'aggiornamento")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	Mappers.ApplyUtenteUpdate(patch, &utente)

	if err := s.DB.Save(&utente).Error; err != nil {
		return nil, err
	}

	log.WithField("codiceFiscale", codiceFiscale).Info("Utente aggiornato")
	return Mappers.ToUtenteResponse(&utente), nil
}

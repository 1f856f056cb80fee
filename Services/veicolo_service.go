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

// VeicoloService implements the vehicle business rules. Note the two
// contracts that differ from customers on purpose: search combines all
// supplied filters with AND, and update is a full replace.
type VeicoloService struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewVeicoloService(db *gorm.DB) *VeicoloService {
	return &VeicoloService{DB: db, validate: validator.New()}
}

func (s *VeicoloService) GetVeicoli() ([]*Dtos.VeicoloResponseDto, error) {
	var veicoli []Models.Veicolo
	if err := s.DB.Find(&veicoli).Error; err != nil {
		return nil, err
	}
	return toVeicoloResponses(veicoli), nil
}

func (s *VeicoloService) GetVeicoliDisponibili() ([]*Dtos.VeicoloResponseDto, error) {
	var veicoli []Models.Veicolo
	if err := s.DB.Where("disponibile = ?", true).Find(&veicoli).Error; err != nil {
		return nil, err
	}
	return toVeicoloResponses(veicoli), nil
}

// GetVeicoloByNumeroTelaio returns (nil, nil) when no vehicle matches.
func (s *VeicoloService) GetVeicoloByNumeroTelaio(numeroTelaio string) (*Dtos.VeicoloResponseDto, error) {
	var veicolo Models.Veicolo
	err := s.DB.Where("numero_telaio = ?", numeroTelaio).First(&veicolo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithField("numeroTelaio", numeroTelaio).Warn("Veicolo non trovato")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return Mappers.ToVeicoloResponse(&veicolo), nil
}

// SearchVeicoli combines every supplied filter with AND, case-insensitive
// substring each. Unlike the customer search, filters narrow each other.
func (s *VeicoloService) SearchVeicoli(numeroTelaio, marca, modello string) ([]*Dtos.VeicoloResponseDto, error) {
	query := s.DB.Model(&Models.Veicolo{})

	if numeroTelaio != "" {
		query = query.Where("LOWER(numero_telaio) LIKE ?", "%"+strings.ToLower(numeroTelaio)+"%")
	}
	if marca != "" {
		query = query.Where("LOWER(marca) LIKE ?", "%"+strings.ToLower(marca)+"%")
	}
	if modello != "" {
		query = query.Where("LOWER(modello) LIKE ?", "%"+strings.ToLower(modello)+"%")
	}

	var veicoli []Models.Veicolo
	if err := query.Find(&veicoli).Error; err != nil {
		return nil, err
	}
	log.WithField("results", len(veicoli)).Info("Ricerca veicoli completata")
	return toVeicoloResponses(veicoli), nil
}

// Insert persists a new vehicle. A duplicate chassis number yields
// (nil, nil): the absent marker the controller turns into a 409.
func (s *VeicoloService) Insert(req *Dtos.VeicoloRequestDto) (*Dtos.VeicoloResponseDto, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: dati veicolo mancanti", ErrValidation)
	}

	req.NumeroTelaio = strings.TrimSpace(req.NumeroTelaio)
	req.Marca = strings.TrimSpace(req.Marca)
	req.Modello = strings.TrimSpace(req.Modello)

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

	var existing Models.Veicolo
	err := s.DB.Where("numero_telaio = ?", req.NumeroTelaio).First(&existing).Error
	if err == nil {
		log.WithField("numeroTelaio", req.NumeroTelaio).Error("Numero telaio già presente")
		return nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	veicolo := Mappers.ToVeicoloEntity(req)
	if err := s.DB.Create(veicolo).Error; err != nil {
		return nil, err
	}

	log.WithField("numeroTelaio", veicolo.NumeroTelaio).Info("Veicolo inserito")
	return Mappers.ToVeicoloResponse(veicolo), nil
}

// Update replaces every mutable field of the vehicle identified by chassis
// number (PatchFullReplace). Returns (nil, nil) when it does not exist.
func (s *VeicoloService) Update(patch *Dtos.VeicoloUpdateDto, numeroTelaio string) (*Dtos.VeicoloResponseDto, error) {
	var veicolo Models.Veicolo
	err := s.DB.Where("numero_telaio = ?", numeroTelaio).First(&veicolo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.WithField("numeroTelaio", numeroTelaio).Warn("Veicolo non trovato per l'aggiornamento")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	Mappers.ApplyVeicoloUpdate(patch, &veicolo)

	// Save with Select so false/zero fields are written too; GORM's default
	// Updates would skip them and break the full-replace contract.
	if err := s.DB.Model(&veicolo).
		Select("marca", "modello", "anno_immatricolazione", "chilometraggio", "disponibile", "id_configurazione").
		Updates(&veicolo).Error; err != nil {
		return nil, err
	}

	log.WithField("numeroTelaio", numeroTelaio).Info("Veicolo aggiornato")
	return Mappers.ToVeicoloResponse(&veicolo), nil
}

func toVeicoloResponses(veicoli []Models.Veicolo) []*Dtos.VeicoloResponseDto {
	dtos := make([]*Dtos.VeicoloResponseDto, 0, len(veicoli))
	for i := range veicoli {
		dtos = append(dtos, Mappers.ToVeicoloResponse(&veicoli[i]))
	}
	return dtos
}

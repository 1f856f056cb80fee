package Mappers

import (
	"Concessionario/Dtos"
	"Concessionario/Models"
)

func ToVeicoloResponse(v *Models.Veicolo) *Dtos.VeicoloResponseDto {
	if v == nil {
		return nil
	}
	return &Dtos.VeicoloResponseDto{
		NumeroTelaio:         v.NumeroTelaio,
		Marca:                v.Marca,
		Modello:              v.Modello,
		AnnoImmatricolazione: v.AnnoImmatricolazione,
		Chilometraggio:       v.Chilometraggio,
		Disponibile:          v.Disponibile,
		IdConfigurazione:     v.IdConfigurazione,
	}
}

func ToVeicoloEntity(dto *Dtos.VeicoloRequestDto) *Models.Veicolo {
	if dto == nil {
		return nil
	}
	return &Models.Veicolo{
		NumeroTelaio:         dto.NumeroTelaio,
		Marca:                dto.Marca,
		Modello:              dto.Modello,
		AnnoImmatricolazione: dto.AnnoImmatricolazione,
		Chilometraggio:       dto.Chilometraggio,
		Disponibile:          dto.Disponibile,
		IdConfigurazione:     dto.IdConfigurazione,
	}
}

// ApplyVeicoloUpdate replaces every mutable field under the PatchFullReplace
// contract. Zero values in the DTO overwrite stored values; the chassis
// number is the lookup key and stays as-is.
func ApplyVeicoloUpdate(dto *Dtos.VeicoloUpdateDto, v *Models.Veicolo) {
	if dto == nil || v == nil {
		return
	}
	v.Marca = dto.Marca
	v.Modello = dto.Modello
	v.AnnoImmatricolazione = dto.AnnoImmatricolazione
	v.Chilometraggio = dto.Chilometraggio
	v.Disponibile = dto.Disponibile
	v.IdConfigurazione = dto.IdConfigurazione
}

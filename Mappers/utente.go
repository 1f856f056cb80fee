package Mappers

import (
	"Concessionario/Dtos"
	"Concessionario/Models"
)

func ToUtenteResponse(u *Models.Utente) *Dtos.UtenteResponseDto {
	if u == nil {
		return nil
	}
	return &Dtos.UtenteResponseDto{
		CodiceFiscaleUtente: u.CodiceFiscaleUtente,
		Nome:                u.Nome,
		Cognome:             u.Cognome,
		DataNascita:         u.DataNascita,
		Telefono:            u.Telefono,
		Email:               u.Email,
		Indirizzo:           u.Indirizzo,
	}
}

func ToUtenteEntity(dto *Dtos.UtenteRequestDto) *Models.Utente {
	if dto == nil {
		return nil
	}
	return &Models.Utente{
		CodiceFiscaleUtente: dto.CodiceFiscaleUtente,
		Nome:                dto.Nome,
		Cognome:             dto.Cognome,
		DataNascita:         dto.DataNascita,
		Telefono:            dto.Telefono,
		Email:               dto.Email,
		Indirizzo:           dto.Indirizzo,
	}
}

// ApplyUtenteUpdate patches the stored customer in place under the
// PatchPartial contract: only non-nil DTO fields overwrite.
func ApplyUtenteUpdate(dto *Dtos.UtenteUpdateDto, u *Models.Utente) {
	if dto == nil || u == nil {
		return
	}
	if dto.Nome != nil {
		u.Nome = *dto.Nome
	}
	if dto.Cognome != nil {
		u.Cognome = *dto.Cognome
	}
	if dto.DataNascita != nil {
		u.DataNascita = *dto.DataNascita
	}
	if dto.Telefono != nil {
		u.Telefono = *dto.Telefono
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.Indirizzo != nil {
		u.Indirizzo = *dto.Indirizzo
	}
}

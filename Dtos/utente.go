package Dtos

// UtenteRequestDto is the insert payload. Telefono is the only optional
// field; everything else is rejected when missing or blank.
type UtenteRequestDto struct {
	CodiceFiscaleUtente string `json:"codiceFiscaleUtente" validate:"required"`
	Nome                string `json:"nome" validate:"required"`
	Cognome             string `json:"cognome" validate:"required"`
	DataNascita         string `json:"dataNascita" validate:"required"`
	Telefono            string `json:"telefono"`
	Email               string `json:"email" validate:"required"`
	Indirizzo           string `json:"indirizzo" validate:"required"`
}

// UtenteUpdateDto carries a partial patch: nil fields are left untouched on
// the stored customer. The codice fiscale is not part of the patch, it is
// the lookup key and immutable.
type UtenteUpdateDto struct {
	Nome        *string `json:"nome"`
	Cognome     *string `json:"cognome"`
	DataNascita *string `json:"dataNascita"`
	Telefono    *string `json:"telefono"`
	Email       *string `json:"email"`
	Indirizzo   *string `json:"indirizzo"`
}

type UtenteResponseDto struct {
	CodiceFiscaleUtente string `json:"codiceFiscaleUtente"`
	Nome                string `json:"nome"`
	Cognome             string `json:"cognome"`
	DataNascita         string `json:"dataNascita"`
	Telefono            string `json:"telefono"`
	Email               string `json:"email"`
	Indirizzo           string `json:"indirizzo"`
}

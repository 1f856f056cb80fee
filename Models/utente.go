package Models

// Utente is a dealership customer. The codice fiscale is the external
// identifier and never changes after insert; the numeric id is a surrogate
// key kept dense through the maintenance endpoints.
type Utente struct {
	ID                  uint   `gorm:"column:id_utente;primaryKey;autoIncrement" json:"idUtente"`
	CodiceFiscaleUtente string `gorm:"column:codice_fiscale_utente;size:16;uniqueIndex;not null" json:"codiceFiscaleUtente"`
	Nome                string `gorm:"column:nome" json:"nome"`
	Cognome             string `gorm:"column:cognome" json:"cognome"`
	DataNascita         string `gorm:"column:data_nascita" json:"dataNascita"`
	Telefono            string `gorm:"column:telefono" json:"telefono"`
	Email               string `gorm:"column:email" json:"email"`
	Indirizzo           string `gorm:"column:indirizzo" json:"indirizzo"`
}

func (Utente) TableName() string {
	return "utente"
}

package Models

// Movimento records a sale or rental linking a customer to a vehicle.
// The application only migrates this table; row changes happen elsewhere,
// and deleting a row restores the vehicle availability via the trigger
// installed by the maintenance endpoint.
type Movimento struct {
	ID                  uint   `gorm:"column:id_movimento;primaryKey;autoIncrement" json:"idMovimento"`
	NumeroTelaio        string `gorm:"column:numero_telaio;index" json:"numeroTelaio"`
	CodiceFiscaleUtente string `gorm:"column:codice_fiscale_utente;index" json:"codiceFiscaleUtente"`
	DataInizio          string `gorm:"column:data_inizio" json:"dataInizio"`
	DataFine            string `gorm:"column:data_fine" json:"dataFine"`
}

func (Movimento) TableName() string {
	return "movimento"
}

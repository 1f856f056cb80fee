package Models

// Veicolo is a vehicle in the dealership inventory, identified externally by
// its chassis number. Disponibile is flipped back to true by the movimento
// delete trigger, not by application code.
type Veicolo struct {
	ID                   uint   `gorm:"column:id_veicolo;primaryKey;autoIncrement" json:"idVeicolo"`
	NumeroTelaio         string `gorm:"column:numero_telaio;size:17;uniqueIndex;not null" json:"numeroTelaio"`
	Marca                string `gorm:"column:marca" json:"marca"`
	Modello              string `gorm:"column:modello" json:"modello"`
	AnnoImmatricolazione int    `gorm:"column:anno_immatricolazione" json:"annoImmatricolazione"`
	Chilometraggio       int    `gorm:"column:chilometraggio" json:"chilometraggio"`
	Disponibile          bool   `gorm:"column:disponibile" json:"disponibile"`
	IdConfigurazione     *uint  `gorm:"column:id_configurazione" json:"idConfigurazione"`
}

func (Veicolo) TableName() string {
	return "veicolo"
}

package Models

// Configurazione is the vehicle configuration entity referenced by
// Veicolo.IdConfigurazione. Only its identity matters here; it is migrated
// so the foreign key and its sequence reset have a table to point at.
type Configurazione struct {
	ID          uint   `gorm:"column:id_configurazione;primaryKey;autoIncrement" json:"idConfigurazione"`
	Descrizione string `gorm:"column:descrizione" json:"descrizione"`
}

func (Configurazione) TableName() string {
	return "configurazione"
}

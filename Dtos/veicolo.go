package Dtos

type VeicoloRequestDto struct {
	NumeroTelaio         string `json:"numeroTelaio" validate:"required"`
	Marca                string `json:"marca" validate:"required"`
	Modello              string `json:"modello" validate:"required"`
	AnnoImmatricolazione int    `json:"annoImmatricolazione"`
	Chilometraggio       int    `json:"chilometraggio"`
	Disponibile          bool   `json:"disponibile"`
	IdConfigurazione     *uint  `json:"idConfigurazione"`
}

// VeicoloUpdateDto is a full-replace payload: every mutable vehicle field is
// taken from it as-is, including zero values. This is intentionally not the
// partial-patch shape used for customers.
type VeicoloUpdateDto struct {
	Marca                string `json:"marca"`
	Modello              string `json:"modello"`
	AnnoImmatricolazione int    `json:"annoImmatricolazione"`
	Chilometraggio       int    `json:"chilometraggio"`
	Disponibile          bool   `json:"disponibile"`
	IdConfigurazione     *uint  `json:"idConfigurazione"`
}

type VeicoloResponseDto struct {
	NumeroTelaio         string `json:"numeroTelaio"`
	Marca                string `json:"marca"`
	Modello              string `json:"modello"`
	AnnoImmatricolazione int    `json:"annoImmatricolazione"`
	Chilometraggio       int    `json:"chilometraggio"`
	Disponibile          bool   `json:"disponibile"`
	IdConfigurazione     *uint  `json:"idConfigurazione"`
}

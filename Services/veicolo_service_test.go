package Services

import (
	"errors"
	"testing"

	"Concessionario/Dtos"
)

func validVeicolo(telaio string) *Dtos.VeicoloRequestDto {
	return &Dtos.VeicoloRequestDto{
		NumeroTelaio:         telaio,
		Marca:                "Fiat",
		Modello:              "Panda",
		AnnoImmatricolazione: 2020,
		Chilometraggio:       45000,
		Disponibile:          true,
	}
}

func TestVeicoloInsertDuplicateReturnsAbsent(t *testing.T) {
	svc := NewVeicoloService(newTestDB(t))

	if _, err := svc.Insert(validVeicolo("ZFA31200003123456")); err != nil {
		t.Fatalf("first insert failed: %v", err)
	}

	got, err := svc.Insert(validVeicolo("ZFA31200003123456"))
	if err != nil {
		t.Fatalf("duplicate insert should not error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected absent marker for duplicate chassis, got %+v", got)
	}
}

func TestVeicoloInsertMissingFields(t *testing.T) {
	svc := NewVeicoloService(newTestDB(t))

	req := validVeicolo("ZFA31200003123456")
	req.Marca = ""
	if _, err := svc.Insert(req); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for missing marca, got %v", err)
	}
}

func TestVeicoloUpdateFullReplaceRoundTrip(t *testing.T) {
	svc := NewVeicoloService(newTestDB(t))

	if _, err := svc.Insert(validVeicolo("ZFA31200003123456")); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	idConfig := uint(7)
	patch := &Dtos.VeicoloUpdateDto{
		Marca:                "Lancia",
		Modello:              "Ypsilon",
		AnnoImmatricolazione: 2022,
		Chilometraggio:       0,
		Disponibile:          false,
		IdConfigurazione:     &idConfig,
	}
	if _, err := svc.Update(patch, "ZFA31200003123456"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := svc.GetVeicoloByNumeroTelaio("ZFA31200003123456")
	if err != nil {
		t.Fatalf("read-back failed: %v", err)
	}
	if got == nil {
		t.Fatal("vehicle disappeared after update")
	}
	if got.Marca != "Lancia" || got.Modello != "Ypsilon" ||
		got.AnnoImmatricolazione != 2022 || got.Chilometraggio != 0 ||
		got.Disponibile != false ||
		got.IdConfigurazione == nil || *got.IdConfigurazione != 7 {
		t.Fatalf("full replace did not overwrite every field: %+v", got)
	}
}

func TestVeicoloUpdateNotFoundSentinel(t *testing.T) {
	svc := NewVeicoloService(newTestDB(t))

	got, err := svc.Update(&Dtos.VeicoloUpdateDto{Marca: "Fiat"}, "MISSING")
	if err != nil {
		t.Fatalf("expected nil error for missing vehicle, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil sentinel, got %+v", got)
	}
}

func TestVeicoloSearchIsConjunctive(t *testing.T) {
	svc := NewVeicoloService(newTestDB(t))

	panda := validVeicolo("ZFA31200003123456")
	punto := validVeicolo("ZFA31200003654321")
	punto.Modello = "Punto"
	golf := validVeicolo("WVWZZZ1KZAW123456")
	golf.Marca = "Volkswagen"
	golf.Modello = "Golf"
	for _, req := range []*Dtos.VeicoloRequestDto{panda, punto, golf} {
		if _, err := svc.Insert(req); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	// Both filters must match: unlike the customer search, they combine.
	results, err := svc.SearchVeicoli("", "fiat", "panda")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].Modello != "Panda" {
		t.Fatalf("expected conjunctive search to return only the Panda, got %+v", results)
	}

	results, err = svc.SearchVeicoli("", "fiat", "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 Fiat vehicles, got %d", len(results))
	}

	results, err = svc.SearchVeicoli("ZFA", "fiat", "golf")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no match for contradictory filters, got %+v", results)
	}
}

func TestVeicoliDisponibili(t *testing.T) {
	svc := NewVeicoloService(newTestDB(t))

	avail := validVeicolo("ZFA31200003123456")
	sold := validVeicolo("ZFA31200003654321")
	sold.Disponibile = false
	for _, req := range []*Dtos.VeicoloRequestDto{avail, sold} {
		if _, err := svc.Insert(req); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	results, err := svc.GetVeicoliDisponibili()
	if err != nil {
		t.Fatalf("listing available vehicles failed: %v", err)
	}
	if len(results) != 1 || results[0].NumeroTelaio != "ZFA31200003123456" {
		t.Fatalf("expected only the available vehicle, got %+v", results)
	}
}

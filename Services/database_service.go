package Services

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// sequenceTarget pairs a table with its surrogate-key column. Only members
// of this closed set ever reach the DDL below; arbitrary table names are
// rejected before any SQL is built.
type sequenceTarget struct {
	Table    string
	IDColumn string
}

var sequenceTargets = map[string]sequenceTarget{
	"movimento":      {Table: "movimento", IDColumn: "id_movimento"},
	"configurazione": {Table: "configurazione", IDColumn: "id_configurazione"},
	"amministratore": {Table: "amministratore", IDColumn: "id_amministratore"},
}

// DatabaseService runs the one-off maintenance statements: auto-increment
// resets and the movimento delete trigger. DDL is dialect-specific, so both
// the MySQL and the sqlite form are carried.
type DatabaseService struct {
	DB *gorm.DB
}

func NewDatabaseService(db *gorm.DB) *DatabaseService {
	return &DatabaseService{DB: db}
}

// ResetSequence sets the next auto-increment value of the named table to 1
// when the table is empty, max(id)+1 otherwise. The read and the set run in
// one transaction so a concurrent insert cannot slip between them.
func (s *DatabaseService) ResetSequence(name string) error {
	target, ok := sequenceTargets[name]
	if !ok {
		return fmt.Errorf("%w: tabella %q non ammessa", ErrValidation, name)
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(target.Table).Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := s.setNextID(tx, target, 1); err != nil {
				return err
			}
			log.WithField("table", target.Table).Info("Sequenza resettata a 1")
			return nil
		}

		var maxID int64
		row := tx.Table(target.Table).Select("MAX(" + target.IDColumn + ")").Row()
		if err := row.Scan(&maxID); err != nil {
			return err
		}

		if err := s.setNextID(tx, target, maxID+1); err != nil {
			return err
		}
		log.WithFields(log.Fields{"table": target.Table, "next": maxID + 1}).Info("Sequenza resettata")
		return nil
	})
}

// setNextID makes the next generated id equal to next. The table name comes
// from the closed sequenceTargets set, never from the caller.
func (s *DatabaseService) setNextID(tx *gorm.DB, target sequenceTarget, next int64) error {
	if s.dialect() == "sqlite" {
		return s.setNextIDSqlite(tx, target, next)
	}
	return tx.Exec(fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = %d", target.Table, next)).Error
}

// setNextIDSqlite adjusts the sqlite counter. Tables migrated without
// AUTOINCREMENT allocate rowids from max(rowid)+1, and sqlite only creates
// sqlite_sequence once an AUTOINCREMENT table exists — when the table is
// absent the counter is already derived from the data and there is nothing
// to set. sqlite_sequence has no unique constraint on name, so the write is
// an UPDATE followed by an INSERT when no row was touched.
func (s *DatabaseService) setNextIDSqlite(tx *gorm.DB, target sequenceTarget, next int64) error {
	var seqTables int64
	err := tx.Raw(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'",
	).Scan(&seqTables).Error
	if err != nil {
		return err
	}
	if seqTables == 0 {
		return nil
	}

	if next <= 1 {
		return tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", target.Table).Error
	}

	res := tx.Exec("UPDATE sqlite_sequence SET seq = ? WHERE name = ?", next-1, target.Table)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return tx.Exec("INSERT INTO sqlite_sequence (name, seq) VALUES (?, ?)", target.Table, next-1).Error
	}
	return nil
}

// CreateMovimentoDeleteTrigger installs (drop-if-exists, then create) the
// trigger that marks a vehicle available again when its movimento row is
// deleted. Availability correctness after deletes depends on this trigger
// being present.
func (s *DatabaseService) CreateMovimentoDeleteTrigger() error {
	if err := s.DB.Exec("DROP TRIGGER IF EXISTS after_movimento_delete").Error; err != nil {
		return err
	}

	var triggerSQL string
	if s.dialect() == "sqlite" {
		triggerSQL = `CREATE TRIGGER after_movimento_delete
AFTER DELETE ON movimento
FOR EACH ROW
BEGIN
    UPDATE veicolo SET disponibile = 1 WHERE numero_telaio = OLD.numero_telaio;
END`
	} else {
		triggerSQL = `CREATE TRIGGER after_movimento_delete
AFTER DELETE ON movimento
FOR EACH ROW
BEGIN
    UPDATE veicolo SET disponibile = true WHERE numero_telaio = OLD.numero_telaio;
END`
	}

	if err := s.DB.Exec(triggerSQL).Error; err != nil {
		log.WithError(err).Error("Creazione trigger after_movimento_delete fallita")
		return err
	}

	log.Info("Trigger after_movimento_delete creato")
	return nil
}

func (s *DatabaseService) dialect() string {
	return s.DB.Dialector.Name()
}

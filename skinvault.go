/*
Package skinvault is a library for extracting and injecting custom
color palettes in the game's save file.
*/
package skinvault

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"skinvault/savefile"
	"skinvault/skin"
)

// ErrSlotOutOfRange means a user-supplied slot number is outside 1 to 5
var ErrSlotOutOfRange = errors.New("skinvault: slot out of range")

// SkinVault composes the character roster, the save file rules and the
// backup policy behind the user-facing operations.
type SkinVault struct {
	roster *Roster
	backup *backupManager
	logger zerolog.Logger
}

// New returns a SkinVault operating over the given validated roster.
// A window of zero selects the default backup window.
func New(roster *Roster, window time.Duration, logger zerolog.Logger) *SkinVault {
	return &SkinVault{
		roster: roster,
		backup: newBackupManager(window),
		logger: logger,
	}
}

// checkSlot converts a 1-based user slot number to the internal
// 0-based slot, rejecting anything outside 1 to 5.
func checkSlot(slot int) (int, error) {
	if slot < 1 || slot > savefile.SlotsPerCharacter {
		return 0, fmt.Errorf("%w: %d, expected 1 to %d", ErrSlotOutOfRange, slot, savefile.SlotsPerCharacter)
	}
	return slot - 1, nil
}

// Export reads one palette slot out of the save file and writes it to
// dest as a skin file. The save file is validated in full before any
// record is read.
func (v *SkinVault) Export(savePath, character string, slot int, dest string) error {
	s, err := checkSlot(slot)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(savePath)
	if err != nil {
		return err
	}

	if err := savefile.Validate(b, v.roster.Offsets()); err != nil {
		return err
	}

	c, err := v.roster.Lookup(strings.ToLower(character))
	if err != nil {
		return err
	}

	offset := savefile.SlotOffset(c.Offset, s)

	var p savefile.Palette
	if err := p.UnmarshalBinary(b[offset : offset+savefile.RecordSize]); err != nil {
		return err
	}

	if err := skin.WriteFile(dest, p); err != nil {
		return err
	}

	v.logger.Info().Str("character", c.Name).Int("slot", slot).Str("skin", dest).Msg("exported palette")

	return nil
}

// Import writes the palette in the skin file src into one slot of the
// save file. A protective copy of the save is taken, and must succeed,
// before the save is opened for writing; the write itself touches only
// the 8 bytes of the target record.
func (v *SkinVault) Import(savePath, character string, slot int, src string) error {
	s, err := checkSlot(slot)
	if err != nil {
		return err
	}

	backupPath, err := v.backup.maybeBackup(savePath)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	if backupPath != "" {
		v.logger.Info().Str("backup", backupPath).Msg("backed up save file")
	}

	p, err := skin.ReadFile(src)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(savePath, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return err
	}

	if err := savefile.Validate(b, v.roster.Offsets()); err != nil {
		return err
	}

	c, err := v.roster.Lookup(strings.ToLower(character))
	if err != nil {
		return err
	}

	record, err := p.MarshalBinary()
	if err != nil {
		return err
	}

	if _, err := f.WriteAt(record, savefile.SlotOffset(c.Offset, s)); err != nil {
		return err
	}

	v.logger.Info().Str("character", c.Name).Int("slot", slot).Str("skin", src).Msg("imported palette")

	return f.Close()
}

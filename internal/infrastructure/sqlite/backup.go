package sqlite

import (
	"fmt"
	"io"
	"os"
)

// BackupFile copia src en dst conservando permisos y fecha de modificación.
// Si dst existe se sobrescribe.
func BackupFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("abrir origen: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat origen: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("crear respaldo: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copiar respaldo: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("cerrar respaldo: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("fecha del respaldo: %w", err)
	}
	return nil
}

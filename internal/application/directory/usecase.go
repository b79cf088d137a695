// Package directory gestiona los directorios planos de talleres y clientes:
// etiquetas con contacto que se adjuntan a los movimientos, sin más lógica.
package directory

import (
	"sort"
	"strings"
	"sync"

	"github.com/tu-usuario/stock-ledger/internal/application/dto"
	"github.com/tu-usuario/stock-ledger/internal/domain"
	"github.com/tu-usuario/stock-ledger/internal/infrastructure/jsonstore"
	"github.com/tu-usuario/stock-ledger/pkg/logger"
)

// UseCase opera sobre un directorio (clientes o talleres) inyectado.
type UseCase struct {
	mu    *sync.Mutex
	store *jsonstore.DirectoryStore
	kind  string // para los logs: "workshop" | "client"
	log   *logger.Logger
}

// NewUseCase construye el caso de uso para un directorio concreto.
func NewUseCase(mu *sync.Mutex, store *jsonstore.DirectoryStore, kind string, log *logger.Logger) *UseCase {
	return &UseCase{mu: mu, store: store, kind: kind, log: log}
}

// Add da de alta una entrada. El nombre es el identificador.
func (uc *UseCase) Add(name, contact string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.store.Has(name) {
		return domain.ErrConflict
	}
	uc.store.Put(name, contact)
	if err := uc.store.Save(); err != nil {
		return err
	}
	uc.log.Info().Str("kind", uc.kind).Str("name", name).Msg("entrada de directorio creada")
	return nil
}

// Edit renombra y/o cambia el contacto de una entrada existente.
func (uc *UseCase) Edit(name, newName, contact string) error {
	name = strings.TrimSpace(name)
	newName = strings.TrimSpace(newName)
	if name == "" {
		return domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.store.Has(name) {
		return domain.ErrNotFound
	}
	if newName != "" && newName != name {
		if uc.store.Has(newName) {
			return domain.ErrConflict
		}
		uc.store.Rename(name, newName)
		name = newName
	}
	if contact != "" {
		uc.store.Put(name, contact)
	}
	return uc.store.Save()
}

// Delete elimina una entrada existente.
func (uc *UseCase) Delete(name string) error {
	name = strings.TrimSpace(name)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.store.Has(name) {
		return domain.ErrNotFound
	}
	uc.store.Delete(name)
	return uc.store.Save()
}

// List devuelve las entradas ordenadas por nombre.
func (uc *UseCase) List() []dto.DirectoryRow {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	names := uc.store.Names()
	sort.Strings(names)
	rows := make([]dto.DirectoryRow, 0, len(names))
	for _, n := range names {
		rows = append(rows, dto.DirectoryRow{Name: n, Contact: uc.store.Contact(n)})
	}
	return rows
}

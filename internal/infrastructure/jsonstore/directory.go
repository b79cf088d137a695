package jsonstore

// directoryEntry es el valor persistido de un taller o cliente.
type directoryEntry struct {
	Contact string `json:"contacto"`
}

// DirectoryStore es un directorio plano nombre → contacto. Sirve tanto para
// talleres como para clientes (ficheros talleres.json y clientes.json).
type DirectoryStore struct {
	path    string
	entries map[string]*directoryEntry
}

// OpenDirectory carga el directorio desde path (vacío si falta el fichero).
func OpenDirectory(path string) *DirectoryStore {
	s := &DirectoryStore{path: path, entries: map[string]*directoryEntry{}}
	load(path, &s.entries)
	if s.entries == nil {
		s.entries = map[string]*directoryEntry{}
	}
	return s
}

// Save reescribe el fichero completo.
func (s *DirectoryStore) Save() error {
	return save(s.path, s.entries)
}

// Has indica si el nombre existe en el directorio.
func (s *DirectoryStore) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Contact devuelve el contacto del nombre ("" si no existe).
func (s *DirectoryStore) Contact(name string) string {
	if e, ok := s.entries[name]; ok {
		return e.Contact
	}
	return ""
}

// Put crea o actualiza una entrada.
func (s *DirectoryStore) Put(name, contact string) {
	s.entries[name] = &directoryEntry{Contact: contact}
}

// Rename mueve la entrada a otro nombre conservando el contacto.
func (s *DirectoryStore) Rename(oldName, newName string) {
	if e, ok := s.entries[oldName]; ok {
		delete(s.entries, oldName)
		s.entries[newName] = e
	}
}

// Delete elimina la entrada si existe.
func (s *DirectoryStore) Delete(name string) {
	delete(s.entries, name)
}

// Names devuelve los nombres registrados (sin orden garantizado).
func (s *DirectoryStore) Names() []string {
	names := make([]string, 0, len(s.entries))
	for n := range s.entries {
		names = append(names, n)
	}
	return names
}

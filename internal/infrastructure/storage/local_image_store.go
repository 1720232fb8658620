// Package storage guarda imágenes de producto en disco local, bajo el
// directorio público configurado.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const productImagesDir = "images/products"

// LocalImageStore implementa usecase.ImageStore sobre el sistema de archivos.
type LocalImageStore struct {
	rootDir string
}

// NewLocalImageStore construye el store. rootDir es el directorio público
// servido como estático (ej. ./wwwroot).
func NewLocalImageStore(rootDir string) *LocalImageStore {
	return &LocalImageStore{rootDir: rootDir}
}

// Save escribe el archivo y devuelve la ruta pública relativa
// (ej. /images/products/abc.jpg).
func (s *LocalImageStore) Save(fileName string, r io.Reader) (string, error) {
	dir := filepath.Join(s.rootDir, productImagesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: crear directorio: %w", err)
	}

	// El nombre viene generado aguas arriba (uuid + extensión); se limpia
	// igualmente para no salir del directorio.
	fileName = filepath.Base(fileName)
	dst, err := os.Create(filepath.Join(dir, fileName))
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return "/" + productImagesDir + "/" + fileName, nil
}

// Delete elimina la imagen referida por su ruta pública. Ignora rutas fuera
// del directorio de imágenes y archivos ya inexistentes.
func (s *LocalImageStore) Delete(path string) error {
	rel := strings.TrimPrefix(path, "/")
	if !strings.HasPrefix(rel, productImagesDir+"/") {
		return nil
	}
	full := filepath.Join(s.rootDir, productImagesDir, filepath.Base(rel))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: eliminar archivo: %w", err)
	}
	return nil
}

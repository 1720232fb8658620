package usecase

import "io"

// ImageStore puerto del almacén de archivos para imágenes de producto.
// El caso de uso solo pide guardar y borrar por ruta; nunca inspecciona el contenido.
type ImageStore interface {
	// Save guarda el stream bajo fileName y devuelve la ruta relativa estable.
	Save(fileName string, content io.Reader) (string, error)
	// Delete borra el archivo de una ruta devuelta por Save. Ignorar si no existe.
	Delete(path string) error
}

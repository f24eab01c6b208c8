package ports

import "context"

// ComputeFunc produce el valor a guardar ante un fallo de caché. Un error no se guarda.
type ComputeFunc func(ctx context.Context) (any, error)

// TagAwareCache define el puerto de salida para la caché clave/valor con invalidación por etiquetas.
// Cualquier adaptador (memoria, Redis, mock) debe implementar esta interfaz.
//
// Las misses concurrentes de una misma clave pueden invocar compute más de una vez;
// gana la última escritura.
type TagAwareCache interface {
	// GetOrCompute devuelve el valor guardado en key sin invocar compute; si no existe,
	// invoca compute una vez, guarda el resultado etiquetado con tags y lo devuelve.
	GetOrCompute(ctx context.Context, key string, tags []string, compute ComputeFunc) (any, error)
	// Set guarda value en key etiquetado con tags, reemplazando cualquier valor previo.
	Set(ctx context.Context, key string, tags []string, value any) error
	// Invalidate elimina toda entrada que tenga alguna de las etiquetas indicadas.
	Invalidate(ctx context.Context, tags ...string) error
}

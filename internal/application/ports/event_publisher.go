package ports

import "context"

// EventNewData evento que reciben los dashboards abiertos cuando se crea un contenedor.
const EventNewData = "newData"

// EventPublisher define el puerto de salida para las actualizaciones en vivo.
// Es opcional: los casos de uso que lo reciben en nil simplemente no publican.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload any) error
}

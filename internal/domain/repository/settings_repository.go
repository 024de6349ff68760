package repository

import "github.com/lilnaht/bidFlow/internal/domain/entity"

// SettingsRepository define el puerto de persistencia para los datos de la
// empresa. Hay a lo sumo una fila.
type SettingsRepository interface {
	// Get devuelve la configuración, o nil si nunca se guardó.
	Get() (*entity.Settings, error)
	// Upsert crea o reemplaza la fila única.
	Upsert(settings *entity.Settings) error
}

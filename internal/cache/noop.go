package cache

import "time"

// Noop заменяет Redis при локальном запуске без внешних сервисов:
// каждое чтение промахивается, записи отбрасываются.
type Noop struct{}

// NewNoop создает новый экземпляр Noop.
func NewNoop() *Noop {
	return &Noop{}
}

// Get всегда сообщает о промахе кеша.
func (n *Noop) Get(_ string, _ any) (bool, error) {
	return false, nil
}

// Set отбрасывает значение.
func (n *Noop) Set(_ string, _ any, _ time.Duration) error {
	return nil
}

// Invalidate ничего не делает.
func (n *Noop) Invalidate(_ string) error {
	return nil
}

package memory

import "context"

// TxManager менеджер транзакций хранилища в памяти.
// Реализует тот же набор методов, что и txmanager.TransactionManager.
type TxManager struct {
	store *Store
}

// NewTxManager создает менеджер транзакций
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

// Do выполняет fn атомарно
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn атомарно (все транзакции хранилища сериализуемы)
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoReadOnly выполняет fn атомарно
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s := m.store

	// Вложенный вызов переиспользует внешнюю транзакцию
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()

	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.st = snapshot
		return err
	}

	return nil
}

package topics

const (
	// Mudanças de eventos esportivos (create/update/delete),
	// consumidas pelos demais serviços da plataforma (apostas, frontend)
	EventoChanges = "evento_changes"
)

package server

// Server groups the entity-specific servers behind one router.
type Server struct {
	QuoteServer
}

func NewServer(
	quoteServer QuoteServer,
) Server {
	return Server{
		QuoteServer: quoteServer,
	}
}

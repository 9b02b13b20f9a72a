package domain

// AskInput is the body of POST /faq/ask and the query of GET /faq/ask
type AskInput struct {
	Query    string `json:"query"              validate:"notblank,max=2000" example:"Comment obtenir un remboursement ?"`
	Language string `json:"language,omitempty" validate:"omitempty,bcp47"   example:"fr"`
}

// AskOutput is the localized answer
type AskOutput struct {
	Query    string `json:"query"    example:"Comment obtenir un remboursement ?"`
	Language string `json:"language" example:"fr"`
	Answer   string `json:"answer"   example:"Contactez le support avec votre numéro de commande."`
}

// MatchInput is the query of GET /faq/match
type MatchInput struct {
	Query string `json:"query" validate:"notblank,max=2000" example:"refund policy"`
}

// MatchOutput is an English-only engine lookup
type MatchOutput struct {
	Found    bool   `json:"found"              example:"true"`
	Score    int    `json:"score"              example:"100"`
	Question string `json:"question,omitempty" example:"What is your refund policy?"`
	Answer   string `json:"answer,omitempty"   example:"Refunds are available within 30 days of purchase."`
	Index    int    `json:"index"              example:"0"`
}

// EntriesOutput lists the loaded corpus
type EntriesOutput struct {
	Count   int     `json:"count"   example:"12"`
	Entries []Entry `json:"entries"`
}

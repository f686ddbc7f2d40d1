package wsmodels

const CodeLeadCreated = "lead_created"

type ServerMessage struct {
	Time string      `json:"time"` // date de l'événement
	Code string      `json:"code"` // code de l'événement
	Msg  string      `json:"msg"`  // texte de l'événement
	Data interface{} `json:"data,omitempty"`
}

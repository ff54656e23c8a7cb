package melidomain

type Shipment struct {
	ID              FlexInt          `json:"id"`
	Status          string           `json:"status"`
	ReceiverPhone   *Phone           `json:"receiver_phone"`
	ReceiverAddress *ReceiverAddress `json:"receiver_address"`
}

type ReceiverAddress struct {
	ReceiverName  string     `json:"receiver_name"`
	ReceiverPhone *Phone     `json:"receiver_phone"`
	StreetName    string     `json:"street_name"`
	StreetNumber  FlexString `json:"street_number"`
	ZipCode       FlexString `json:"zip_code"`
	City          *NamedRef  `json:"city"`
	State         *NamedRef  `json:"state"`
	Comment       string     `json:"comment"`
	AddressLine   string     `json:"address_line"`
}

type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (n *NamedRef) NameOrEmpty() string {
	if n == nil {
		return ""
	}
	return n.Name
}

// Phone devolve o telefone do destinatário, priorizando o campo da raiz do envio
func (s *Shipment) Phone() *Phone {
	if s == nil {
		return nil
	}

	if s.ReceiverPhone != nil {
		return s.ReceiverPhone
	}

	if s.ReceiverAddress != nil {
		return s.ReceiverAddress.ReceiverPhone
	}

	return nil
}

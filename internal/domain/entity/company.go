package entity

// CompanyProfile datos de la empresa que aparecen en los documentos de factura.
//
// Se pasa siempre por valor: cualquier "actualización" produce una copia nueva,
// nunca se muta un perfil compartido.
type CompanyProfile struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
}

// WithContact devuelve una copia del perfil con teléfono y email reemplazados.
func (p CompanyProfile) WithContact(phone, email string) CompanyProfile {
	p.Phone = phone
	p.Email = email
	return p
}

// WithAddress devuelve una copia del perfil con la dirección reemplazada.
func (p CompanyProfile) WithAddress(address string) CompanyProfile {
	p.Address = address
	return p
}

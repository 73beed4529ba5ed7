package application

import (
	"github.com/mateusmacedo/go-domain-events/pkg/domain"
)

const FindCustomerQueryName = "FindCustomer"

type FindCustomerData struct {
	CustomerID string
}

type findCustomerQuery struct {
	data FindCustomerData
}

func (q findCustomerQuery) QueryName() string {
	return FindCustomerQueryName
}

func (q findCustomerQuery) Payload() FindCustomerData {
	return q.data
}

func NewFindCustomerQuery(data FindCustomerData) domain.Query[FindCustomerData] {
	return findCustomerQuery{data: data}
}

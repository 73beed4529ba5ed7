package application

import (
	"github.com/mateusmacedo/go-domain-events/pkg/domain"
)

const FindProductQueryName = "FindProduct"

type FindProductData struct {
	ProductID string
}

type findProductQuery struct {
	data FindProductData
}

func (q findProductQuery) QueryName() string {
	return FindProductQueryName
}

func (q findProductQuery) Payload() FindProductData {
	return q.data
}

func NewFindProductQuery(data FindProductData) domain.Query[FindProductData] {
	return findProductQuery{data: data}
}

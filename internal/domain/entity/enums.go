package entity

type OrganizationType string

const (
	OrganizationIE  OrganizationType = "IE"
	OrganizationLLC OrganizationType = "LLC"
	OrganizationJSC OrganizationType = "JSC"
)

type TenderStatus string

const (
	TenderCreated   TenderStatus = "Created"
	TenderPublished TenderStatus = "Published"
	TenderClosed    TenderStatus = "Closed"
)

func (s TenderStatus) Valid() bool {
	switch s {
	case TenderCreated, TenderPublished, TenderClosed:
		return true
	}
	return false
}

type ServiceType string

const (
	ServiceConstruction ServiceType = "Construction"
	ServiceDelivery     ServiceType = "Delivery"
	ServiceManufacture  ServiceType = "Manufacture"
)

func (s ServiceType) Valid() bool {
	switch s {
	case ServiceConstruction, ServiceDelivery, ServiceManufacture:
		return true
	}
	return false
}

type BidStatus string

const (
	BidCreated   BidStatus = "Created"
	BidPublished BidStatus = "Published"
	BidCanceled  BidStatus = "Canceled"
)

func (s BidStatus) Valid() bool {
	switch s {
	case BidCreated, BidPublished, BidCanceled:
		return true
	}
	return false
}

type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

type AuthorType string

const (
	AuthorOrganization AuthorType = "Organization"
	AuthorUser         AuthorType = "User"
)

func (a AuthorType) Valid() bool {
	return a == AuthorOrganization || a == AuthorUser
}

// EnumTypes lists the postgres enum types the schema relies on, keyed by type name.
var EnumTypes = map[string][]string{
	"organization_type":   {string(OrganizationIE), string(OrganizationLLC), string(OrganizationJSC)},
	"tender_status":       {string(TenderCreated), string(TenderPublished), string(TenderClosed)},
	"tender_service_type": {string(ServiceConstruction), string(ServiceDelivery), string(ServiceManufacture)},
	"bid_status":          {string(BidCreated), string(BidPublished), string(BidCanceled)},
	"bid_decision":        {string(DecisionApproved), string(DecisionRejected)},
	"bid_author_type":     {string(AuthorOrganization), string(AuthorUser)},
}

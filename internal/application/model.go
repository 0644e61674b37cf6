package application

const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"

	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalDenied   = "denied"
)

// Sections are free-form: the form wizard owns their shape, the API only
// stores and returns them.
type UpsertApplicationPayload struct {
	Personal     map[string]interface{} `json:"personal"`
	Employment   map[string]interface{} `json:"employment"`
	Assets       map[string]interface{} `json:"assets"`
	RealEstate   map[string]interface{} `json:"realEstate"`
	LoanProperty map[string]interface{} `json:"loanProperty"`
	Declarations map[string]interface{} `json:"declarations"`
}

type UpdateApprovalPayload struct {
	Approval string `json:"approval" validate:"required,oneof=approved denied"`
}

type ApplicationDocument struct {
	Id                string                 `json:"id" bson:"_id"`
	UserId            string                 `json:"userId" bson:"userId"`
	Personal          map[string]interface{} `json:"personal,omitempty" bson:"personal,omitempty"`
	Employment        map[string]interface{} `json:"employment,omitempty" bson:"employment,omitempty"`
	Assets            map[string]interface{} `json:"assets,omitempty" bson:"assets,omitempty"`
	RealEstate        map[string]interface{} `json:"realEstate,omitempty" bson:"realEstate,omitempty"`
	LoanProperty      map[string]interface{} `json:"loanProperty,omitempty" bson:"loanProperty,omitempty"`
	Declarations      map[string]interface{} `json:"declarations,omitempty" bson:"declarations,omitempty"`
	Status            string                 `json:"status" bson:"status"`
	Approval          string                 `json:"approval" bson:"approval"`
	CreatedAt         int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt         int64                  `json:"updatedAt" bson:"updatedAt"`
	ApprovalUpdatedAt int64                  `json:"approvalUpdatedAt,omitempty" bson:"approvalUpdatedAt,omitempty"`
}

package sqlconfig

import (
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
)

// Owner scopes profile-owned rows: a user may keep several named budgets.
type Owner struct {
	UserID      uuid.UUID
	ProfileName string
}

// PeriodScope selects the rows of one owner for one budget month.
type PeriodScope struct {
	Owner Owner
	Month int
	Year  int
}

// ownerFilters returns the predicates selecting the owner's rows. On a schema
// without profile_name the profile cannot be filtered on.
func ownerFilters(schema Schema, owner Owner) []bob.Expression {
	filters := []bob.Expression{psql.Quote("user_id").EQ(psql.Arg(owner.UserID))}
	if schema.ProfileScoped {
		filters = append(filters, psql.Quote("profile_name").EQ(psql.Arg(owner.ProfileName)))
	}
	return filters
}

func periodScopeFilters(schema Schema, scope PeriodScope) []bob.Expression {
	return append(ownerFilters(schema, scope.Owner),
		psql.Quote("budget_month").EQ(psql.Arg(scope.Month)),
		psql.Quote("budget_year").EQ(psql.Arg(scope.Year)),
	)
}

// profileColumn is the select-list entry for profile_name. Legacy schemas get
// an empty literal so row structs scan the same way.
func profileColumn(schema Schema) string {
	if schema.ProfileScoped {
		return "profile_name"
	}
	return "'' AS profile_name"
}

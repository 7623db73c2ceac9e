package access

// Static reference data. Defined once, never mutated at runtime; all reads go
// through the Registry accessors which return copies of the slices they hand out.

var modules = []Module{
	{
		ID:          "user_management",
		Name:        "User Management",
		Description: "Manage all platform users",
		Icon:        "Users",
		SubModules: []SubModule{
			{
				ID:          "customer_management",
				Name:        "Customer Management",
				Description: "Manage customer accounts and data",
				Icon:        "User",
				Permissions: []string{"customers:read", "customers:update", "customers:export"},
			},
			{
				ID:          "employee_management",
				Name:        "Employee Management",
				Description: "Manage employee records and access",
				Icon:        "UserCheck",
				Permissions: []string{"employees:read", "employees:create", "employees:update", "employees:delete"},
			},
			{
				ID:          "vendor_management",
				Name:        "Vendor Management",
				Description: "Manage vendor partnerships",
				Icon:        "Building",
				Permissions: []string{"vendors:read", "vendors:create", "vendors:update", "vendors:approve"},
			},
		},
		Permissions: []string{"users:read", "users:create", "users:update", "users:delete", "users:export"},
	},
	{
		ID:          "financial_management",
		Name:        "Financial Management",
		Description: "Financial operations and reporting",
		Icon:        "DollarSign",
		SubModules: []SubModule{
			{
				ID:          "accounting",
				Name:        "Accounting",
				Description: "Bookkeeping and financial records",
				Icon:        "Calculator",
				Permissions: []string{"accounts:read", "accounts:create", "accounts:update", "invoices:create"},
			},
			{
				ID:          "payments",
				Name:        "Payment Processing",
				Description: "Process and track payments",
				Icon:        "CreditCard",
				Permissions: []string{"payments:read", "payments:process", "payments:refund"},
			},
			{
				ID:          "budgeting",
				Name:        "Budget Management",
				Description: "Budget planning and allocation",
				Icon:        "PieChart",
				Permissions: []string{"budgets:read", "budgets:create", "budgets:approve"},
			},
		},
		Permissions: []string{"finance:read", "finance:create", "finance:update", "finance:export"},
	},
	{
		ID:          "operations",
		Name:        "Operations Management",
		Description: "Day-to-day operations",
		Icon:        "Settings",
		SubModules: []SubModule{
			{
				ID:          "spa_operations",
				Name:        "Spa Operations",
				Description: "Manage spa services and bookings",
				Icon:        "MapPin",
				Permissions: []string{"spas:read", "spas:update", "bookings:read", "bookings:manage"},
			},
			{
				ID:          "staff_scheduling",
				Name:        "Staff Scheduling",
				Description: "Manage staff schedules and assignments",
				Icon:        "Calendar",
				Permissions: []string{"schedules:read", "schedules:create", "schedules:update"},
			},
			{
				ID:          "inventory",
				Name:        "Inventory Management",
				Description: "Track supplies and equipment",
				Icon:        "Package",
				Permissions: []string{"inventory:read", "inventory:update", "inventory:order"},
			},
		},
		Permissions: []string{"operations:read", "operations:manage", "operations:export"},
	},
	{
		ID:          "marketing",
		Name:        "Marketing & Promotions",
		Description: "Marketing campaigns and customer acquisition",
		Icon:        "Heart",
		SubModules: []SubModule{
			{
				ID:          "campaigns",
				Name:        "Campaign Management",
				Description: "Create and manage marketing campaigns",
				Icon:        "Megaphone",
				Permissions: []string{"campaigns:read", "campaigns:create", "campaigns:update"},
			},
			{
				ID:          "analytics",
				Name:        "Marketing Analytics",
				Description: "Track campaign performance",
				Icon:        "BarChart3",
				Permissions: []string{"analytics:read", "analytics:export"},
			},
			{
				ID:          "content",
				Name:        "Content Management",
				Description: "Manage marketing content and assets",
				Icon:        "FileText",
				Permissions: []string{"content:read", "content:create", "content:update"},
			},
		},
		Permissions: []string{"marketing:read", "marketing:create", "marketing:update", "marketing:export"},
	},
	{
		ID:          "legal_compliance",
		Name:        "Legal & Compliance",
		Description: "Legal affairs and regulatory compliance",
		Icon:        "Scale",
		SubModules: []SubModule{
			{
				ID:          "contracts",
				Name:        "Contract Management",
				Description: "Manage legal contracts and agreements",
				Icon:        "FileText",
				Permissions: []string{"contracts:read", "contracts:create", "contracts:update"},
			},
			{
				ID:          "compliance",
				Name:        "Regulatory Compliance",
				Description: "Ensure regulatory compliance",
				Icon:        "Shield",
				Permissions: []string{"compliance:read", "compliance:audit", "compliance:report"},
			},
			{
				ID:          "litigation",
				Name:        "Litigation Management",
				Description: "Handle legal disputes and cases",
				Icon:        "Gavel",
				Permissions: []string{"litigation:read", "litigation:manage"},
			},
		},
		Permissions: []string{"legal:read", "legal:create", "legal:update", "legal:approve"},
	},
	{
		ID:          "customer_support",
		Name:        "Customer Support",
		Description: "Customer service and support",
		Icon:        "HeadphonesIcon",
		SubModules: []SubModule{
			{
				ID:          "tickets",
				Name:        "Support Tickets",
				Description: "Manage customer support tickets",
				Icon:        "MessageSquare",
				Permissions: []string{"tickets:read", "tickets:create", "tickets:update", "tickets:resolve"},
			},
			{
				ID:          "live_chat",
				Name:        "Live Chat Support",
				Description: "Real-time customer support",
				Icon:        "MessageCircle",
				Permissions: []string{"chat:read", "chat:respond"},
			},
			{
				ID:          "feedback",
				Name:        "Customer Feedback",
				Description: "Collect and analyze feedback",
				Icon:        "Star",
				Permissions: []string{"feedback:read", "feedback:respond", "feedback:analyze"},
			},
		},
		Permissions: []string{"support:read", "support:respond", "support:escalate"},
	},
	{
		ID:          "hr_management",
		Name:        "Human Resources",
		Description: "Employee management and HR operations",
		Icon:        "UserCog",
		SubModules: []SubModule{
			{
				ID:          "recruitment",
				Name:        "Recruitment",
				Description: "Hiring and onboarding processes",
				Icon:        "UserPlus",
				Permissions: []string{"recruitment:read", "recruitment:create", "recruitment:approve"},
			},
			{
				ID:          "payroll",
				Name:        "Payroll Management",
				Description: "Salary and benefits administration",
				Icon:        "DollarSign",
				Permissions: []string{"payroll:read", "payroll:process", "payroll:export"},
			},
			{
				ID:          "performance",
				Name:        "Performance Management",
				Description: "Employee performance tracking",
				Icon:        "TrendingUp",
				Permissions: []string{"performance:read", "performance:evaluate", "performance:report"},
			},
		},
		Permissions: []string{"hr:read", "hr:create", "hr:update", "hr:approve"},
	},
	{
		ID:          "system_admin",
		Name:        "System Administration",
		Description: "System configuration and management",
		Icon:        "Crown",
		SubModules: []SubModule{
			{
				ID:          "role_management",
				Name:        "Role Management",
				Description: "Create and manage user roles",
				Icon:        "Users",
				Permissions: []string{"roles:read", "roles:create", "roles:update", "roles:delete"},
			},
			{
				ID:          "system_config",
				Name:        "System Configuration",
				Description: "Configure system settings",
				Icon:        "Settings",
				Permissions: []string{"system:read", "system:configure", "system:backup"},
			},
			{
				ID:          "audit_logs",
				Name:        "Audit Logs",
				Description: "View system audit trails",
				Icon:        "FileText",
				Permissions: []string{"audit:read", "audit:export"},
			},
		},
		Permissions: []string{"admin:read", "admin:create", "admin:update", "admin:delete", "admin:configure"},
	},
}

// Role ID constants for the roles referenced from code.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleCustomer   = "customer"
	RoleEmployee   = "employee"
	RoleVendor     = "vendor"
)

var roleDefinitions = []RoleDefinition{
	{
		ID:          "accounts_department",
		Name:        "Accounts Department",
		Description: "Financial accounting and bookkeeping operations",
		Icon:        "Calculator",
		Color:       "#22C55E",
		Modules:     []string{"financial_management"},
		Permissions: []string{"accounts:read", "accounts:create", "accounts:update", "invoices:create", "payments:read"},
		ReportsTo:   []string{"finance_department", "directors"},
		CanManage:   []string{"accounting_staff"},
	},
	{
		ID:          "marketing_department",
		Name:        "Marketing Department",
		Description: "Brand promotion and customer acquisition",
		Icon:        "Heart",
		Color:       "#EC4899",
		Modules:     []string{"marketing"},
		Permissions: []string{"marketing:read", "marketing:create", "marketing:update", "campaigns:create", "analytics:read"},
		ReportsTo:   []string{"directors"},
		CanManage:   []string{"marketing_staff"},
	},
	{
		ID:          "finance_department",
		Name:        "Finance Department",
		Description: "Financial planning and analysis",
		Icon:        "DollarSign",
		Color:       "#3B82F6",
		Modules:     []string{"financial_management"},
		Permissions: []string{"finance:read", "finance:create", "finance:approve", "budgets:create", "budgets:approve"},
		ReportsTo:   []string{"directors"},
		CanManage:   []string{"accounts_department", "finance_staff"},
	},
	{
		ID:          "legal_department",
		Name:        "Legal Department",
		Description: "Legal affairs and compliance",
		Icon:        "Scale",
		Color:       "#EF4444",
		Modules:     []string{"legal_compliance"},
		Permissions: []string{"legal:read", "legal:create", "legal:approve", "contracts:create", "compliance:audit"},
		ReportsTo:   []string{"directors"},
		CanManage:   []string{"advocate", "legal_staff"},
	},
	{
		ID:          "customer_care",
		Name:        "Customer Care",
		Description: "Customer support and service operations",
		Icon:        "HeadphonesIcon",
		Color:       "#10B981",
		Modules:     []string{"customer_support"},
		Permissions: []string{"support:read", "support:respond", "tickets:create", "tickets:resolve", "feedback:read"},
		ReportsTo:   []string{"operations_head"},
		CanManage:   []string{"support_staff"},
	},
	{
		ID:          "staff_department",
		Name:        "Staff Department",
		Description: "Staff management and coordination",
		Icon:        "UserCheck",
		Color:       "#F59E0B",
		Modules:     []string{"hr_management", "operations"},
		Permissions: []string{"staff:read", "staff:manage", "schedules:create", "schedules:update"},
		ReportsTo:   []string{"hr_department"},
		CanManage:   []string{"field_staff"},
	},
	{
		ID:          "vendor_list",
		Name:        "Vendor List Management",
		Description: "Vendor database and relationship management",
		Icon:        "List",
		Color:       "#06B6D4",
		Modules:     []string{"user_management"},
		Permissions: []string{"vendors:read", "vendors:create", "vendors:update", "vendor_data:export"},
		ReportsTo:   []string{"operations_head"},
		CanManage:   []string{"vendor_coordinators"},
	},
	{
		ID:          "customer_data",
		Name:        "Customer Data Management",
		Description: "Customer information and analytics",
		Icon:        "Database",
		Color:       "#6366F1",
		Modules:     []string{"user_management", "marketing"},
		Permissions: []string{"customers:read", "customer_data:export", "analytics:read", "reports:generate"},
		ReportsTo:   []string{"marketing_department"},
		CanManage:   []string{"data_analysts"},
	},
	{
		ID:          "fo_department",
		Name:        "F.O. Department",
		Description: "Front office operations and customer interactions",
		Icon:        "Briefcase",
		Color:       "#FBBF24",
		Modules:     []string{"operations", "customer_support"},
		Permissions: []string{"front_office:read", "front_office:manage", "bookings:read", "customers:read"},
		ReportsTo:   []string{"operations_head"},
		CanManage:   []string{"reception_staff"},
	},
	{
		ID:          "it_department",
		Name:        "IT Department",
		Description: "Technology infrastructure and support",
		Icon:        "Monitor",
		Color:       "#8B5CF6",
		Modules:     []string{"system_admin"},
		Permissions: []string{"system:read", "system:configure", "system:backup", "audit:read", "tech_support:manage"},
		ReportsTo:   []string{"directors"},
		CanManage:   []string{"tech_staff"},
	},
	{
		ID:          RoleSuperAdmin,
		Name:        "Command Power - Super Admin",
		Description: "Ultimate system control and oversight",
		Icon:        "Crown",
		Color:       "#F59E0B",
		Modules: []string{
			"system_admin", "user_management", "financial_management", "operations",
			"marketing", "legal_compliance", "customer_support", "hr_management",
		},
		Permissions: []string{PermissionAll},
		CanManage:   []string{"directors", "all_departments"},
	},
	{
		ID:          "ho_details",
		Name:        "H.O. Details",
		Description: "Head office administration and management",
		Icon:        "Building",
		Color:       "#6B7280",
		Modules:     []string{"operations", "hr_management"},
		Permissions: []string{"ho_admin:read", "ho_admin:manage", "office_operations:read"},
		ReportsTo:   []string{"directors"},
		CanManage:   []string{"ho_staff"},
	},
	{
		ID:          "corporate_office",
		Name:        "Corporate Office Details",
		Description: "Corporate office operations and management",
		Icon:        "Building2",
		Color:       "#4B5563",
		Modules:     []string{"operations", "financial_management"},
		Permissions: []string{"corporate:read", "corporate:manage", "corporate_reports:read"},
		ReportsTo:   []string{"directors"},
		CanManage:   []string{"corporate_staff"},
	},
	{
		ID:          "advocate",
		Name:        "Advocate",
		Description: "Legal representation and advisory services",
		Icon:        "Gavel",
		Color:       "#F43F5E",
		Modules:     []string{"legal_compliance"},
		Permissions: []string{"legal:read", "litigation:manage", "legal_advice:provide"},
		ReportsTo:   []string{"legal_department"},
	},
	{
		ID:          "ca_cs",
		Name:        "CA & CS",
		Description: "Chartered Accountant & Company Secretary services",
		Icon:        "Calculator",
		Color:       "#FCD34D",
		Modules:     []string{"financial_management", "legal_compliance"},
		Permissions: []string{"audit:read", "audit:conduct", "compliance:read", "financial_reports:create"},
		ReportsTo:   []string{"finance_department", "legal_department"},
	},
	{
		ID:          "directors",
		Name:        "Directors' Details",
		Description: "Board of directors and executive management",
		Icon:        "Users",
		Color:       "#1F2937",
		Modules:     []string{"system_admin", "financial_management", "operations", "hr_management"},
		Permissions: []string{"executive:read", "executive:approve", "strategic:read", "all_reports:read"},
		CanManage:   []string{"all_departments"},
	},
	{
		ID:          "hr_department",
		Name:        "HR Department",
		Description: "Human resources and employee management",
		Icon:        "UserCog",
		Color:       "#9333EA",
		Modules:     []string{"hr_management"},
		Permissions: []string{"hr:read", "hr:create", "hr:update", "employees:manage", "payroll:process"},
		ReportsTo:   []string{"directors"},
		CanManage:   []string{"staff_department", "hr_staff"},
	},
	{
		ID:          RoleCustomer,
		Name:        "Customer",
		Description: "Standard customer account",
		Icon:        "User",
		Color:       "#8B5CF6",
		Modules:     []string{},
		Permissions: []string{},
	},
	{
		ID:          RoleEmployee,
		Name:        "Employee",
		Description: "Internal employee dashboard",
		Icon:        "Briefcase",
		Color:       "#EC4899",
		Modules:     []string{"operations", "hr_management"},
		Permissions: []string{},
	},
	{
		ID:          RoleVendor,
		Name:        "Vendor",
		Description: "Service provider dashboard",
		Icon:        "Store",
		Color:       "#2563EB",
		Modules:     []string{"operations", "marketing"},
		Permissions: []string{},
	},
	{
		ID:          RoleAdmin,
		Name:        "Admin",
		Description: "General administrator access",
		Icon:        "Crown",
		Color:       "#4F46E5",
		Modules:     []string{"user_management", "operations", "financial_management"},
		Permissions: []string{},
	},
}

package access

// Dashboard content tables, keyed module -> role. Icon and color values are
// string tokens resolved by the client renderer; unknown tokens fall back to a
// placeholder there, never an error here.

var moduleStats = map[string]map[string][]Stat{
	"financial_management": {
		"accounts_department": {
			{Label: "Monthly Revenue", Value: "₹8.4L", Icon: "DollarSign", Color: "success-100", TextColor: "success-600", Change: "+12% this month"},
			{Label: "Pending Invoices", Value: "23", Icon: "FileText", Color: "warning-100", TextColor: "warning-600", Change: "5 overdue"},
			{Label: "Processed Payments", Value: "156", Icon: "CheckCircle", Color: "primary-100", TextColor: "primary-600", Change: "+8 today"},
			{Label: "Account Balance", Value: "₹2.1L", Icon: "TrendingUp", Color: "secondary-100", TextColor: "secondary-600", Change: "+5% growth"},
		},
		"finance_department": {
			{Label: "Budget Allocated", Value: "₹15L", Icon: "DollarSign", Color: "primary-100", TextColor: "primary-600", Change: "85% utilized"},
			{Label: "ROI Analysis", Value: "24%", Icon: "TrendingUp", Color: "success-100", TextColor: "success-600", Change: "+3% this quarter"},
			{Label: "Cost Centers", Value: "8", Icon: "BarChart3", Color: "secondary-100", TextColor: "secondary-600", Change: "2 new added"},
			{Label: "Financial Reports", Value: "45", Icon: "FileText", Color: "warning-100", TextColor: "warning-600", Change: "12 pending review"},
		},
		"ca_cs": {
			{Label: "Audit Reports", Value: "12", Icon: "FileText", Color: "primary-100", TextColor: "primary-600", Change: "3 pending"},
			{Label: "Compliance Score", Value: "98%", Icon: "Shield", Color: "success-100", TextColor: "success-600", Change: "+2% improvement"},
			{Label: "Tax Filings", Value: "24", Icon: "Calendar", Color: "warning-100", TextColor: "warning-600", Change: "2 due this month"},
			{Label: "Financial Health", Value: "A+", Icon: "TrendingUp", Color: "secondary-100", TextColor: "secondary-600", Change: "Excellent rating"},
		},
	},
	"marketing": {
		"marketing_department": {
			{Label: "Active Campaigns", Value: "12", Icon: "TrendingUp", Color: "secondary-100", TextColor: "secondary-600", Change: "3 new this week"},
			{Label: "Lead Generation", Value: "234", Icon: "Users", Color: "primary-100", TextColor: "primary-600", Change: "+18% this month"},
			{Label: "Conversion Rate", Value: "12.5%", Icon: "BarChart3", Color: "success-100", TextColor: "success-600", Change: "+2.3% improvement"},
			{Label: "Social Reach", Value: "45K", Icon: "Star", Color: "warning-100", TextColor: "warning-600", Change: "+5K followers"},
		},
		"customer_data": {
			{Label: "Total Customers", Value: "2,847", Icon: "Users", Color: "primary-100", TextColor: "primary-600", Change: "+234 this month"},
			{Label: "Active Users", Value: "1,456", Icon: "CheckCircle", Color: "success-100", TextColor: "success-600", Change: "89% retention"},
			{Label: "Customer Segments", Value: "8", Icon: "Database", Color: "secondary-100", TextColor: "secondary-600", Change: "2 new segments"},
			{Label: "Data Quality", Value: "94%", Icon: "Star", Color: "warning-100", TextColor: "warning-600", Change: "+3% improvement"},
		},
	},
	"customer_support": {
		"customer_care": {
			{Label: "Active Tickets", Value: "34", Icon: "MessageSquare", Color: "success-100", TextColor: "success-600", Change: "8 urgent"},
			{Label: "Resolved Today", Value: "28", Icon: "CheckCircle", Color: "success-100", TextColor: "success-600", Change: "95% satisfaction"},
			{Label: "Avg Response Time", Value: "2.3h", Icon: "Clock", Color: "primary-100", TextColor: "primary-600", Change: "-30min improvement"},
			{Label: "Customer Rating", Value: "4.8", Icon: "Star", Color: "warning-100", TextColor: "warning-600", Change: "+0.2 this month"},
		},
	},
	"hr_management": {
		"hr_department": {
			{Label: "Total Employees", Value: "156", Icon: "Users", Color: "secondary-100", TextColor: "secondary-600", Change: "+12 this month"},
			{Label: "Attendance Rate", Value: "94%", Icon: "CheckCircle", Color: "success-100", TextColor: "success-600", Change: "+2% improvement"},
			{Label: "Open Positions", Value: "8", Icon: "AlertTriangle", Color: "warning-100", TextColor: "warning-600", Change: "3 urgent"},
			{Label: "Employee Satisfaction", Value: "4.6", Icon: "Star", Color: "primary-100", TextColor: "primary-600", Change: "+0.3 this quarter"},
		},
		"staff_department": {
			{Label: "Active Staff", Value: "89", Icon: "Users", Color: "warning-100", TextColor: "warning-600", Change: "+5 this week"},
			{Label: "Scheduled Shifts", Value: "234", Icon: "Calendar", Color: "primary-100", TextColor: "primary-600", Change: "12 pending"},
			{Label: "Overtime Hours", Value: "45", Icon: "Clock", Color: "warning-100", TextColor: "warning-600", Change: "-8 hours"},
			{Label: "Staff Efficiency", Value: "92%", Icon: "TrendingUp", Color: "success-100", TextColor: "success-600", Change: "+3% improvement"},
		},
	},
	"operations": {
		"fo_department": {
			{Label: "Daily Visitors", Value: "145", Icon: "Users", Color: "warning-100", TextColor: "warning-600", Change: "+23 today"},
			{Label: "Active Bookings", Value: "67", Icon: "Calendar", Color: "primary-100", TextColor: "primary-600", Change: "12 pending"},
			{Label: "Customer Satisfaction", Value: "4.7", Icon: "Star", Color: "success-100", TextColor: "success-600", Change: "+0.2 this week"},
			{Label: "Front Desk Efficiency", Value: "96%", Icon: "TrendingUp", Color: "secondary-100", TextColor: "secondary-600", Change: "+4% improvement"},
		},
	},
	"system_admin": {
		RoleSuperAdmin: {
			{Label: "Total Users", Value: "2,847", Icon: "Users", Color: "primary-100", TextColor: "primary-600", Change: "+234 this month"},
			{Label: "System Health", Value: "99.9%", Icon: "Shield", Color: "success-100", TextColor: "success-600", Change: "Excellent uptime"},
			{Label: "Active Sessions", Value: "456", Icon: "Clock", Color: "secondary-100", TextColor: "secondary-600", Change: "Peak: 678"},
			{Label: "Security Score", Value: "A+", Icon: "CheckCircle", Color: "warning-100", TextColor: "warning-600", Change: "No threats detected"},
		},
		"it_department": {
			{Label: "System Uptime", Value: "99.8%", Icon: "Shield", Color: "success-100", TextColor: "success-600", Change: "24/7 monitoring"},
			{Label: "Active Servers", Value: "12", Icon: "Database", Color: "primary-100", TextColor: "primary-600", Change: "All operational"},
			{Label: "Support Tickets", Value: "18", Icon: "MessageSquare", Color: "warning-100", TextColor: "warning-600", Change: "5 critical"},
			{Label: "Security Patches", Value: "8", Icon: "CheckCircle", Color: "secondary-100", TextColor: "secondary-600", Change: "Up to date"},
		},
	},
}

var moduleActions = map[string]map[string][]Action{
	"financial_management": {
		"accounts_department": {
			{ID: "create_invoice", Title: "Create Invoice", Subtitle: "Generate new customer invoice", Icon: "FileText"},
			{ID: "process_payment", Title: "Process Payment", Subtitle: "Handle payment transactions", Icon: "DollarSign"},
			{ID: "reconcile_accounts", Title: "Reconcile Accounts", Subtitle: "Match bank statements", Icon: "CheckCircle"},
			{ID: "generate_reports", Title: "Financial Reports", Subtitle: "Generate accounting reports", Icon: "BarChart3"},
		},
		"finance_department": {
			{ID: "budget_planning", Title: "Budget Planning", Subtitle: "Create and manage budgets", Icon: "DollarSign"},
			{ID: "financial_analysis", Title: "Financial Analysis", Subtitle: "Analyze financial performance", Icon: "TrendingUp"},
			{ID: "investment_review", Title: "Investment Review", Subtitle: "Review investment opportunities", Icon: "BarChart3"},
			{ID: "cost_optimization", Title: "Cost Optimization", Subtitle: "Identify cost-saving opportunities", Icon: "Package"},
		},
	},
	"marketing": {
		"marketing_department": {
			{ID: "create_campaign", Title: "Create Campaign", Subtitle: "Launch new marketing campaign", Icon: "TrendingUp"},
			{ID: "analyze_performance", Title: "Campaign Analytics", Subtitle: "Track campaign performance", Icon: "BarChart3"},
			{ID: "manage_content", Title: "Content Management", Subtitle: "Create and manage content", Icon: "FileText"},
			{ID: "social_media", Title: "Social Media", Subtitle: "Manage social presence", Icon: "Star"},
		},
	},
	"customer_support": {
		"customer_care": {
			{ID: "view_tickets", Title: "Support Tickets", Subtitle: "Manage customer inquiries", Icon: "MessageSquare"},
			{ID: "live_chat", Title: "Live Chat", Subtitle: "Real-time customer support", Icon: "Users"},
			{ID: "feedback_review", Title: "Customer Feedback", Subtitle: "Review and respond to feedback", Icon: "Star"},
			{ID: "escalate_issues", Title: "Escalate Issues", Subtitle: "Handle complex problems", Icon: "AlertTriangle"},
		},
	},
	"hr_management": {
		"hr_department": {
			{ID: "employee_records", Title: "Employee Records", Subtitle: "Manage employee information", Icon: "Users"},
			{ID: "recruitment", Title: "Recruitment", Subtitle: "Hire new employees", Icon: "Users"},
			{ID: "payroll", Title: "Payroll Management", Subtitle: "Process employee salaries", Icon: "DollarSign"},
			{ID: "performance_review", Title: "Performance Reviews", Subtitle: "Conduct employee evaluations", Icon: "TrendingUp"},
		},
		"staff_department": {
			{ID: "schedule_staff", Title: "Staff Scheduling", Subtitle: "Create work schedules", Icon: "Calendar"},
			{ID: "track_attendance", Title: "Attendance Tracking", Subtitle: "Monitor staff attendance", Icon: "Clock"},
			{ID: "manage_leaves", Title: "Leave Management", Subtitle: "Approve leave requests", Icon: "Calendar"},
			{ID: "staff_reports", Title: "Staff Reports", Subtitle: "Generate staff reports", Icon: "FileText"},
		},
	},
	"system_admin": {
		RoleSuperAdmin: {
			{ID: "user_management", Title: "User Management", Subtitle: "Manage all system users", Icon: "Users"},
			{ID: "role_management", Title: "Role Management", Subtitle: "Create and assign roles", Icon: "Shield"},
			{ID: "system_settings", Title: "System Settings", Subtitle: "Configure system parameters", Icon: "Package"},
			{ID: "security_center", Title: "Security Center", Subtitle: "Monitor system security", Icon: "Shield"},
			{ID: "analytics_dashboard", Title: "System Analytics", Subtitle: "Platform-wide analytics", Icon: "BarChart3"},
			{ID: "data_management", Title: "Data Management", Subtitle: "Backup and recovery", Icon: "Database"},
		},
	},
}

var recentActivity = map[string][]Activity{
	"accounts_department": {
		{ID: "1", Type: "Invoice Created", Description: "Invoice #INV-2025-001 created for Serenity Spa", Time: "2 hours ago", Status: "success"},
		{ID: "2", Type: "Payment Processed", Description: "Payment of ₹25,000 processed successfully", Time: "4 hours ago", Status: "success"},
		{ID: "3", Type: "Account Reconciled", Description: "Bank account reconciliation completed", Time: "1 day ago", Status: "success"},
	},
	"marketing_department": {
		{ID: "1", Type: "Campaign Launched", Description: "New Year Wellness campaign went live", Time: "1 hour ago", Status: "success"},
		{ID: "2", Type: "Content Published", Description: "Blog post about spa benefits published", Time: "3 hours ago", Status: "success"},
		{ID: "3", Type: "Analytics Report", Description: "Monthly marketing report generated", Time: "1 day ago", Status: "info"},
	},
	"customer_care": {
		{ID: "1", Type: "Ticket Resolved", Description: "Customer complaint about booking resolved", Time: "30 min ago", Status: "success"},
		{ID: "2", Type: "Escalation Handled", Description: "High-priority issue escalated to manager", Time: "2 hours ago", Status: "warning"},
		{ID: "3", Type: "Feedback Received", Description: "Positive feedback from customer survey", Time: "4 hours ago", Status: "success"},
	},
	"hr_department": {
		{ID: "1", Type: "Employee Onboarded", Description: "New therapist Priya Sharma joined", Time: "1 hour ago", Status: "success"},
		{ID: "2", Type: "Leave Approved", Description: "Casual leave approved for Rahul Kumar", Time: "3 hours ago", Status: "info"},
		{ID: "3", Type: "Performance Review", Description: "Quarterly review completed for 5 employees", Time: "1 day ago", Status: "success"},
	},
	RoleSuperAdmin: {
		{ID: "1", Type: "System Backup", Description: "Daily system backup completed successfully", Time: "1 hour ago", Status: "success"},
		{ID: "2", Type: "Security Scan", Description: "Weekly security scan - no threats detected", Time: "2 hours ago", Status: "success"},
		{ID: "3", Type: "User Role Updated", Description: "New role assigned to marketing team member", Time: "4 hours ago", Status: "info"},
	},
}

package domain

// AppStatus はウィザード全体の進行状態です。
type AppStatus string

const (
	StatusIdle           AppStatus = "IDLE"
	StatusGeneratingPlan AppStatus = "GENERATING_PLAN"
	StatusPlanComplete   AppStatus = "PLAN_COMPLETE"
	StatusGeneratingCode AppStatus = "GENERATING_CODE"
	StatusCodeComplete   AppStatus = "CODE_COMPLETE"
	StatusError          AppStatus = "ERROR"
)

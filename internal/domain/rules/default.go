package rules

import "github.com/kailas-cloud/itsmkb/internal/domain/itsm"

// Default returns the built-in bilingual (Japanese/English) rule table.
// Order: Incident, Problem, Change, Release, Request.
func Default() Table {
	t, err := NewTable(
		mustRule(itsm.Incident,
			[]string{
				"障害", "インシデント", "incident", "エラー", "error",
				"異常", "停止", "ダウン", "down", "緊急", "アラート",
				"alert", "発生", "failure", "失敗", "crash",
			},
			[]string{
				"復旧", "対応", "影響", "検知", "通知", "recovery",
				"restore", "再起動", "restart", "回復", "fix",
			},
			0.6, 0.4,
		),
		mustRule(itsm.Problem,
			[]string{
				"問題", "problem", "根本原因", "root cause", "root-cause",
				"再発", "傾向", "分析", "真因", "恒久対策", "analysis",
				"permanent", "recurring", "繰り返し",
			},
			[]string{
				"調査", "特定", "対策", "改善", "防止", "investigation",
				"identify", "prevention", "improvement", "measure",
			},
			0.7, 0.3,
		),
		mustRule(itsm.Change,
			[]string{
				"変更", "change", "改修", "適用", "パッチ", "patch",
				"更新", "update", "修正", "modification", "alter",
				"設定変更", "configuration",
			},
			[]string{
				"計画", "スケジュール", "承認", "ロールバック", "rollback",
				"テスト", "test", "リスク", "risk", "影響評価",
				"approval", "schedule", "plan",
			},
			0.6, 0.4,
		),
		mustRule(itsm.Release,
			[]string{
				"リリース", "release", "デプロイ", "deploy", "展開",
				"本番", "production", "リリースノート", "deployment",
				"rollout", "go-live", "launch",
			},
			[]string{
				"機能", "feature", "バージョン", "version", "ビルド",
				"build", "ロールアウト", "段階的", "phased", "新機能",
			},
			0.7, 0.3,
		),
		mustRule(itsm.Request,
			[]string{
				"依頼", "要求", "request", "リクエスト", "申請",
				"サービスリクエスト", "サービス要求", "service request",
				"申し込み", "application",
			},
			[]string{
				"承認", "approval", "許可", "権限", "アクセス", "access",
				"追加", "削除", "permission", "grant", "revoke",
				"add", "remove",
			},
			0.6, 0.4,
		),
	)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRule(t itsm.Type, primary, secondary []string, wp, ws float64) Rule {
	r, err := NewRule(t, primary, secondary, wp, ws)
	if err != nil {
		panic(err)
	}
	return r
}

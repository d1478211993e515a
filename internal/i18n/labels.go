package i18n

// English is complete; other tables may omit keys and fall back to it.
var tables = map[string]map[string]string{
	"en": {
		"addFirstLoan":         "Add your first loan using the form on the left",
		"languageLabel":        "Language",
		"appTitle":             "4eyesloan",
		"loanNameLabel":        "Loan Name",
		"loanAmountLabel":      "Loan Amount",
		"fixedInterestLabel":   "Fixed Annual Interest Rate",
		"primeRateLabel":       "Prime Rate (Variable)",
		"loanMonthsLabel":      "Number of Months",
		"startDateLabel":       "Start Date",
		"amortMethodLabel":     "Amortization Method",
		"addLoan":              "Add Loan",
		"saveLoan":             "Save Loan",
		"noLoans":              "No loans added yet.",
		"comparison":           "Loan Comparison",
		"showSchedule":         "Show Schedule",
		"hideSchedule":         "Hide Schedule",
		"edit":                 "Edit",
		"remove":               "Remove",
		"exportCSV":            "Export CSV",
		"exportExcel":          "Export Excel",
		"nextPayment":          "Next Payment",
		"dueDate":              "Due Date",
		"interest":             "Interest",
		"principal":            "Principal",
		"total":                "Total",
		"fullyPaid":            "Loan is fully paid or no future payments.",
		"monthsLeft":           "Months Left (approx)",
		"method":               "Method",
		"totalInterest":        "Total Interest",
		"interestPaid":         "Interest Paid So Far",
		"interestRemaining":    "Interest Remaining",
		"totalPrincipal":       "Total Principal",
		"principalPaid":        "Principal Paid So Far",
		"principalRemaining":   "Principal Remaining",
		"name":                 "Name",
		"loanId":               "Loan ID",
		"amount":               "Amount",
		"fixed":                "Fixed Interest",
		"prime":                "Prime Rate",
		"months":               "Months",
		"chartComparison":      "Comparison Chart",
		"spitzerMethod":        "Spitzer (Fixed Payment)",
		"equalPrincipalMethod": "Equal Principal",
		"balloonMethod":        "Balloon Payment",
	},
	"he": {
		"addFirstLoan":       "הוסף הלוואה ראשונה באמצעות הטופס משמאל",
		"languageLabel":      "שפה",
		"appTitle":           "ניהול הלוואות",
		"loanNameLabel":      "שם הלוואה",
		"loanAmountLabel":    "סכום ההלוואה",
		"fixedInterestLabel": "ריבית קבועה שנתית",
		"primeRateLabel":     "ריבית פריים (משתנה)",
		"loanMonthsLabel":    "מספר חודשים",
		"startDateLabel":     "תאריך התחלה",
		"amortMethodLabel":   "שיטת החזר",
		"addLoan":            "הוסף הלוואה",
		"saveLoan":           "שמור הלוואה",
		"noLoans":            "לא נוספו הלוואות",
		"comparison":         "השוואת הלוואות",
		"showSchedule":       "הצג לוח סילוקין",
		"hideSchedule":       "הסתר לוח סילוקין",
		"edit":               "ערוך",
		"remove":             "מחק",
		"nextPayment":        "תשלום הבא",
		"dueDate":            "תאריך תשלום",
		"interest":           "ריבית",
		"principal":          "קרן",
		"total":              "סך הכל",
		"fullyPaid":          "ההלוואה שולמה במלואה או אין תשלומים נוספים",
		"monthsLeft":         "חודשים שנותרו (בערך)",
		"method":             "שיטה",
		"totalInterest":      "סך הריבית",
		"interestPaid":       "ריבית שכבר שולמה",
		"interestRemaining":  "יתרת ריבית",
		"totalPrincipal":     "סך הקרן",
		"principalPaid":      "קרן ששולמה",
		"principalRemaining": "יתרת קרן",
		"name":               "שם",
		"loanId":             "מזהה הלוואה",
		"amount":             "סכום",
		"fixed":              "ריבית קבועה",
		"prime":              "ריבית פריים",
		"months":             "חודשים",
		"chartComparison":    "תרשים השוואה",
	},
	"ar": {
		"addFirstLoan":       "أضف أول قرض لك باستخدام النموذج الموجود على اليسار",
		"languageLabel":      "اللغة",
		"appTitle":           "إدارة القروض",
		"loanNameLabel":      "اسم القرض",
		"loanAmountLabel":    "مبلغ القرض",
		"fixedInterestLabel": "فائدة سنوية ثابتة",
		"primeRateLabel":     "نسبة الأساس (متغيرة)",
		"loanMonthsLabel":    "عدد الأشهر",
		"startDateLabel":     "تاريخ البدء",
		"amortMethodLabel":   "طريقة السداد",
		"addLoan":            "إضافة قرض",
		"saveLoan":           "حفظ القرض",
		"noLoans":            "لم يتم إضافة أي قروض.",
		"comparison":         "مقارنة القروض",
		"showSchedule":       "عرض جدول السداد",
		"hideSchedule":       "إخفاء جدول السداد",
		"edit":               "تعديل",
		"remove":             "حذف",
		"nextPayment":        "الدفعة التالية",
		"dueDate":            "تاريخ الاستحقاق",
		"interest":           "الفائدة",
		"principal":          "الأصل",
		"total":              "الإجمالي",
		"fullyPaid":          "تم سداد القرض بالكامل أو لا توجد دفعات مستقبلية.",
		"monthsLeft":         "الأشهر المتبقية (تقريبي)",
		"method":             "الطريقة",
		"totalInterest":      "إجمالي الفائدة",
		"interestPaid":       "الفائدة المدفوعة حتى الآن",
		"interestRemaining":  "الفائدة المتبقية",
		"totalPrincipal":     "إجمالي الأصل",
		"principalPaid":      "الأصل المدفوع حتى الآن",
		"principalRemaining": "الأصل المتبقي",
		"name":               "الاسم",
		"loanId":             "معرّف القرض",
		"amount":             "المبلغ",
		"fixed":              "فائدة ثابتة",
		"prime":              "نسبة الأساس",
		"months":             "الأشهر",
		"chartComparison":    "مخطط المقارنة",
	},
}

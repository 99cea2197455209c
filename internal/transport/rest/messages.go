package rest

// Client-facing messages. The API speaks Arabic.
const (
	msgServerUp      = "✅ سيرفر تحليل اللهجات السعودية يعمل"
	msgRouteNotFound = "المسار غير موجود"
	msgInternal      = "حدث خطأ داخلي"
	msgInvalidBody   = "صيغة الطلب غير صالحة"
	msgBodyTooLarge  = "حجم الطلب أكبر من المسموح"
	msgInvalidInput  = "بيانات غير صالحة"

	msgMessageRequired = "الرسالة مطلوبة"
	msgChatFailed      = "فشل في معالجة المحادثة"

	msgTermRequired    = "المصطلح مطلوب"
	msgMeaningRequired = "المعنى مطلوب"
	msgIDMissing       = "معرّف المصطلح مفقود"
	msgIDTaken         = "معرّف المصطلح مستخدم مسبقاً"
	msgListFailed      = "فشل في جلب المصطلحات"
	msgAddFailed       = "فشل في إضافة المصطلح"
	msgDeleteFailed    = "فشل في حذف المصطلح"
	msgTermNotFound    = "لم يتم العثور على المصطلح أو لم يحذف"
)

// requiredMessages localizes a missing required field.
var requiredMessages = map[string]string{
	"message": msgMessageRequired,
	"term":    msgTermRequired,
	"meaning": msgMeaningRequired,
	"id":      msgIDMissing,
}

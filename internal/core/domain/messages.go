package domain

const (
	MsgGreeting = "سلام! من ربات IranSC هستم. خوش آمدید!"
	MsgHelp     = "برای گرفتن اطلاعات آب و هوا، از دستور /weather <نام شهر> استفاده کنید. " +
		"برای شنیدن یک جوک، از دستور /joke استفاده کنید! " +
		"برای اخبار AI و برنامه‌نویسی، دستور /news را امتحان کنید!"

	MsgWeatherUsage    = "لطفاً نام یک شهر را وارد کنید. مثال: /weather تهران"
	MsgWeatherNotFound = "متاسفم، اطلاعاتی درباره آب و هوای این شهر موجود نیست. لطفاً نام شهر را بررسی کنید و دوباره امتحان کنید."
	MsgWeatherTimeout  = "سرویس آب و هوا زمان زیادی برای پاسخ صرف کرد. لطفاً بعداً دوباره امتحان کنید."
	MsgWeatherUpstream = "خطایی در ارتباط با سرور آب و هوا رخ داده است. لطفاً بعداً دوباره امتحان کنید."
	MsgWeatherError    = "متاسفم، خطایی رخ داده است. لطفاً بعداً دوباره امتحان کنید."

	MsgJokeNotFound = "متاسفم، الان جوکی پیدا نکردم. لطفاً بعداً دوباره امتحان کنید."
	MsgJokeError    = "متاسفم، نتوانستم یک جوک پیدا کنم. لطفاً بعداً دوباره امتحان کنید."

	MsgNewsNotFound = "متاسفم، خبری درباره AI یا برنامه‌نویسی پیدا نشد."
	MsgNewsError    = "متاسفم، خطایی در دریافت خبرها رخ داده است. لطفاً بعداً دوباره امتحان کنید."

	NewsUnknownTitle       = "عنوان نامشخص"
	NewsMissingDescription = "توضیحات موجود نیست."
)

const weatherTemplate = `آب و هوای %s:
توضیحات: %s
دمای هوا: %s°C
رطوبت: %d%%
سرعت باد: %s کیلومتر/ساعت`

const newsTemplate = `📢 خبر درباره AI و برنامه‌نویسی:

عنوان: %s
توضیحات: %s
لینک: %s`

// Command descriptions shown in the platform's command menu.
const (
	DescStart   = "شروع گفتگو با ربات"
	DescHelp    = "دریافت راهنما"
	DescWeather = "دریافت اطلاعات آب و هوا برای یک شهر"
	DescJoke    = "شنیدن یک جوک تصادفی"
	DescNews    = "دریافت اخبار درباره AI و برنامه‌نویسی"
)
